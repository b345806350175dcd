package auth

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

const sessionIDBytes = 16

// SessionStore 维护 username ↔ sessionId 的双向映射。
// 约束：
// - 每个用户同一时刻至多一个活跃会话，Begin 对已有会话幂等
// - 会话一次性：任何一次校验尝试（无论成败）都会消费掉该会话
// - 会话不按时间过期（与源系统行为一致）
//
// 所有方法并发安全；check-then-insert 在同一把锁内完成。
type SessionStore struct {
	mu     sync.Mutex
	byID   map[string]string // sessionId -> username
	byUser map[string]string // username -> sessionId
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		byID:   make(map[string]string),
		byUser: make(map[string]string),
	}
}

// Begin 为用户颁发会话 id。已有活跃会话时原样返回，否则生成新 id 并登记。
// 永远成功，没有错误分支。
func (s *SessionStore) Begin(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byUser[username]; ok {
		return id
	}

	id := newSessionID()
	s.byID[id] = username
	s.byUser[username] = id
	return id
}

// Consume 按会话 id 取出用户名，并删除该会话（单次有效）。
// 未知 id 返回 ("", false)。
func (s *SessionStore) Consume(sessionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok := s.byID[sessionID]
	if !ok {
		return "", false
	}
	delete(s.byID, sessionID)
	delete(s.byUser, username)
	return username, true
}

// Len 当前活跃会话数。
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// newSessionID 生成不可预测的会话 id（128 位随机数的 hex）。
// 熵源异常时退化为纳秒时间戳，保证 Begin 永不失败。
func newSessionID() string {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return hex.EncodeToString(b)
}
