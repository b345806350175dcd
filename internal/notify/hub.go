package notify

import (
	"sync"
	"time"

	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/gorilla/websocket"
)

const (
	defaultSendBuffer = 64
	defaultWriteWait  = 10 * time.Second
	pingPeriod        = 30 * time.Second
)

// Conn 是 Hub 对底层连接的最小依赖，*websocket.Conn 天然满足。
// 抽成接口是为了让广播逻辑可以脱离真实网络连接做测试。
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client 一条已订阅的客户端连接。
// 每个 Client 有独立的发送缓冲和写协程：单连接内消息按 Broadcast
// 调用顺序送达；不同连接之间互不阻塞。
type Client struct {
	conn Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// shut 关闭客户端（幂等）。不关 send channel，避免与在途 Broadcast 竞争。
func (c *Client) shut() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Hub 维护全部活跃连接并向它们广播事件。
// 注册表以 Conn 为键：同一条连接重复 Subscribe 不会重复登记。
// 连接集合由 RWMutex 保护；广播对单个连接的投递失败只会摘除
// 该连接，不影响其他连接，也不向调用方抛错。
type Hub struct {
	mu      sync.RWMutex
	clients map[Conn]*Client

	sendBuffer int
	writeWait  time.Duration
	log        logger.Logger
}

func NewHub(sendBuffer int, writeWait time.Duration, log logger.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	if writeWait <= 0 {
		writeWait = defaultWriteWait
	}
	return &Hub{
		clients:    make(map[Conn]*Client),
		sendBuffer: sendBuffer,
		writeWait:  writeWait,
		log:        log,
	}
}

// Subscribe 登记一条新连接并启动它的写协程。
// 对同一条连接重复调用是幂等的：返回已登记的客户端，不会重复投递。
func (h *Hub) Subscribe(conn Conn) *Client {
	h.mu.Lock()
	if c, ok := h.clients[conn]; ok {
		h.mu.Unlock()
		return c
	}
	c := &Client{
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
		done: make(chan struct{}),
	}
	h.clients[conn] = c
	h.mu.Unlock()

	go h.writePump(c)
	return c
}

// Unsubscribe 摘除连接。对已摘除的连接重复调用是安全的。
// 只摘自己那一代：旧客户端退订不会误伤同一连接上重新登记的新客户端。
func (h *Hub) Unsubscribe(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	if cur, ok := h.clients[c.conn]; ok && cur == c {
		delete(h.clients, c.conn)
	}
	h.mu.Unlock()
	c.shut()
}

// Count 当前活跃连接数。
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 把事件序列化一次后投递给所有当前订阅的连接。
// 发送缓冲已满的慢消费者直接摘除，不让一个坏连接拖住整场广播。
func (h *Hub) Broadcast(event Event) {
	data := event.Encode()

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		select {
		case c.send <- data:
		case <-c.done:
			// 连接已经在关闭流程里，跳过
		default:
			if h.log != nil {
				h.log.Warnf("notify: dropping slow subscriber (buffer full)")
			}
			h.Unsubscribe(c)
		}
	}
}

// writePump 是每个连接唯一的写入方：顺序排空发送缓冲并周期性 ping。
// 任何写失败都视为连接死亡，摘除后退出。
func (h *Hub) writePump(c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				if h.log != nil {
					h.log.Warnf("notify: write failed, removing subscriber: %v", err)
				}
				h.Unsubscribe(c)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.Unsubscribe(c)
				return
			}
		case <-c.done:
			return
		}
	}
}
