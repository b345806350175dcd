package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/CarConnect/CarConnect/internal/common/logger"
)

// Service 封装认证领域的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
//
// 协议约定（与客户端共同遵守）：
// 1. BeginSession 颁发一次性 sessionId
// 2. 客户端本地算 passwordHash = sha256(password)，
//    proof = sha256(sessionId + passwordHash)
// 3. ValidateSession 比对 proof；该 sessionId 随即作废
// 密码明文和存储哈希都不会在这条链路上传输。
type Service struct {
	creds    CredentialStore
	sessions *SessionStore
	log      logger.Logger
}

func NewService(creds CredentialStore, sessions *SessionStore, log logger.Logger) *Service {
	return &Service{
		creds:    creds,
		sessions: sessions,
		log:      log,
	}
}

// BeginSession 颁发（或复用）用户的会话 id。永远成功。
func (s *Service) BeginSession(ctx context.Context, username string) string {
	return s.sessions.Begin(strings.TrimSpace(username))
}

// ValidateSession 校验挑战应答。
// 无论结果如何，sessionId 在本次调用后即失效：重放同一个 id 必然失败。
// 校验失败（会话不存在 / 用户不存在 / 摘要不匹配）一律返回 false，不区分原因。
func (s *Service) ValidateSession(ctx context.Context, sessionID, proof string) bool {
	username, ok := s.sessions.Consume(sessionID)
	if !ok {
		return false
	}

	storedHash, err := s.creds.GetHash(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) && s.log != nil {
			s.log.Errorf("validate session: load hash for %s: %v", username, err)
		}
		return false
	}

	expected := SessionProof(sessionID, storedHash)
	return digestEqual(expected, proof)
}

// Register 注册新用户。用户名已存在返回 false；仅存储故障会返回非空 error。
func (s *Service) Register(ctx context.Context, username, passwordHash string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return false, nil
	}

	exists, err := s.creds.Exists(ctx, username)
	if err != nil {
		if s.log != nil {
			s.log.Errorf("register: check existence for %s: %v", username, err)
		}
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := s.creds.Insert(ctx, username, passwordHash); err != nil {
		// 并发注册同名用户时唯一索引兜底，按普通的重名失败处理；
		// 其余都是存储故障，记日志并原样上抛
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		if s.log != nil {
			s.log.Errorf("register: insert %s: %v", username, err)
		}
		return false, err
	}
	return true, nil
}

// ChangePassword 修改密码。旧密码在服务端重新做摘要后与存储值比对，
// 不匹配时不做任何变更，返回 false。
func (s *Service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) bool {
	username = strings.TrimSpace(username)
	if username == "" || newPassword == "" {
		return false
	}

	storedHash, err := s.creds.GetHash(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) && s.log != nil {
			s.log.Errorf("change password: load hash for %s: %v", username, err)
		}
		return false
	}

	if !digestEqual(storedHash, DigestHex(oldPassword)) {
		return false
	}

	if err := s.creds.SetHash(ctx, username, DigestHex(newPassword)); err != nil {
		if s.log != nil {
			s.log.Errorf("change password: store hash for %s: %v", username, err)
		}
		return false
	}
	return true
}
