package notify

import (
	"net/http"
	"time"

	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/gorilla/websocket"
)

const pongWait = 60 * time.Second

// Handler 返回 WebSocket 通知端点的 http handler：
// 升级连接 → 订阅到 Hub → 读循环维持连接（客户端消息只记日志）。
// 连接断开或读出错时退订并关闭。
func Handler(hub *Hub, log logger.Logger) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if log != nil {
				log.Warnf("notify: websocket upgrade failed: %v", err)
			}
			return
		}

		client := hub.Subscribe(conn)
		if log != nil {
			log.Infof("notify: subscriber connected from %s (total=%d)", r.RemoteAddr, hub.Count())
		}

		defer func() {
			hub.Unsubscribe(client)
			if log != nil {
				log.Infof("notify: subscriber disconnected from %s (total=%d)", r.RemoteAddr, hub.Count())
			}
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		// 通知通道是单向推送；入站消息读掉以驱动心跳，只记日志。
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if log != nil && len(msg) > 0 {
				log.Debugf("notify: message from %s: %s", r.RemoteAddr, string(msg))
			}
		}
	}
}
