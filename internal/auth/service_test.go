package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// memCredentialStore 内存版 CredentialStore，测试用。
type memCredentialStore struct {
	mu         sync.Mutex
	hashes     map[string]string
	failed     bool // 置位后所有操作返回错误，模拟存储故障
	failInsert bool // 只让 Insert 出错，模拟写入阶段的存储故障
	raceExists bool // Exists 谎报不存在，模拟检查和插入之间被抢注
}

func newMemCredentialStore() *memCredentialStore {
	return &memCredentialStore{hashes: make(map[string]string)}
}

var errStorageDown = errors.New("storage down")

func (m *memCredentialStore) Exists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return false, errStorageDown
	}
	if m.raceExists {
		return false, nil
	}
	_, ok := m.hashes[username]
	return ok, nil
}

func (m *memCredentialStore) GetHash(_ context.Context, username string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return "", errStorageDown
	}
	h, ok := m.hashes[username]
	if !ok {
		return "", ErrUserNotFound
	}
	return h, nil
}

func (m *memCredentialStore) SetHash(_ context.Context, username, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return errStorageDown
	}
	if _, ok := m.hashes[username]; !ok {
		return ErrUserNotFound
	}
	m.hashes[username] = passwordHash
	return nil
}

func (m *memCredentialStore) Insert(_ context.Context, username, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed || m.failInsert {
		return errStorageDown
	}
	if _, ok := m.hashes[username]; ok {
		return ErrUserExists
	}
	m.hashes[username] = passwordHash
	return nil
}

func newTestService(creds CredentialStore) *Service {
	return NewService(creds, NewSessionStore(), nil)
}

func TestChallengeResponseRoundTrip(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	passwordHash := DigestHex("p@ssw0rd")
	if ok, err := svc.Register(ctx, "alice", passwordHash); err != nil || !ok {
		t.Fatalf("Register: ok=%v err=%v", ok, err)
	}

	sessionID := svc.BeginSession(ctx, "alice")
	if sessionID == "" {
		t.Fatalf("expected non-empty session id")
	}

	// 客户端侧计算
	proof := SessionProof(sessionID, passwordHash)

	if !svc.ValidateSession(ctx, sessionID, proof) {
		t.Fatalf("expected validation to succeed")
	}
	// 同一 sessionId 重放必须失败（单次有效）
	if svc.ValidateSession(ctx, sessionID, proof) {
		t.Fatalf("expected replay of consumed session to fail")
	}
}

func TestValidateSessionWrongProofStillConsumes(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	if ok, _ := svc.Register(ctx, "alice", DigestHex("secret")); !ok {
		t.Fatalf("Register failed")
	}
	sessionID := svc.BeginSession(ctx, "alice")

	if svc.ValidateSession(ctx, sessionID, "deadbeef") {
		t.Fatalf("expected wrong proof to fail")
	}
	// 失败同样消费会话：正确的 proof 现在也不被接受
	good := SessionProof(sessionID, DigestHex("secret"))
	if svc.ValidateSession(ctx, sessionID, good) {
		t.Fatalf("expected session to be consumed by failed attempt")
	}
}

func TestValidateSessionUnknownUser(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	// 会话存在但用户从未注册
	sessionID := svc.BeginSession(ctx, "ghost")
	if svc.ValidateSession(ctx, sessionID, SessionProof(sessionID, DigestHex("x"))) {
		t.Fatalf("expected validation to fail for unregistered user")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	h1 := DigestHex("one")
	h2 := DigestHex("two")
	if ok, _ := svc.Register(ctx, "alice", h1); !ok {
		t.Fatalf("first register should succeed")
	}
	if ok, _ := svc.Register(ctx, "alice", h2); ok {
		t.Fatalf("duplicate register should fail")
	}
	got, err := creds.GetHash(ctx, "alice")
	if err != nil || got != h1 {
		t.Fatalf("stored hash must be unchanged, got %q err=%v", got, err)
	}
}

func TestRegisterStorageFailure(t *testing.T) {
	creds := newMemCredentialStore()
	creds.failed = true
	svc := newTestService(creds)

	ok, err := svc.Register(context.Background(), "alice", DigestHex("pw"))
	if ok {
		t.Fatalf("expected register to fail on storage error")
	}
	if err == nil {
		t.Fatalf("expected storage error to surface")
	}
}

func TestRegisterInsertFailureSurfaces(t *testing.T) {
	creds := newMemCredentialStore()
	creds.failInsert = true
	svc := newTestService(creds)

	// Exists 正常、Insert 挂掉：必须当存储故障上抛，而不是装成重名
	ok, err := svc.Register(context.Background(), "alice", DigestHex("pw"))
	if ok {
		t.Fatalf("expected register to fail when insert errors")
	}
	if !errors.Is(err, errStorageDown) {
		t.Fatalf("expected insert storage error to surface, got %v", err)
	}
}

func TestRegisterConcurrentDuplicateIsOrdinaryFailure(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	if ok, _ := svc.Register(ctx, "alice", DigestHex("pw")); !ok {
		t.Fatalf("first register should succeed")
	}
	// Exists 谎报不存在，让第二次注册直接撞唯一索引
	creds.raceExists = true
	ok, err := svc.Register(ctx, "alice", DigestHex("pw2"))
	if ok {
		t.Fatalf("duplicate insert should fail")
	}
	if err != nil {
		t.Fatalf("duplicate key is an ordinary failure, not an error: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	creds := newMemCredentialStore()
	svc := newTestService(creds)
	ctx := context.Background()

	oldHash := DigestHex("oldpw")
	if ok, _ := svc.Register(ctx, "alice", oldHash); !ok {
		t.Fatalf("Register failed")
	}

	// 旧密码错：拒绝且不落库
	if svc.ChangePassword(ctx, "alice", "wrong", "newpw") {
		t.Fatalf("expected change with wrong old password to fail")
	}
	if got, _ := creds.GetHash(ctx, "alice"); got != oldHash {
		t.Fatalf("hash must be unchanged after failed change, got %q", got)
	}

	// 旧密码对：落库新摘要
	if !svc.ChangePassword(ctx, "alice", "oldpw", "newpw") {
		t.Fatalf("expected change with correct old password to succeed")
	}
	if got, _ := creds.GetHash(ctx, "alice"); got != DigestHex("newpw") {
		t.Fatalf("expected new hash to be stored, got %q", got)
	}
}

func TestDigestHexShape(t *testing.T) {
	d := DigestHex("carconnect")
	if len(d) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(d))
	}
	for _, c := range d {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("expected lowercase hex, got %q", d)
		}
	}
	if d != DigestHex("carconnect") {
		t.Fatalf("digest must be deterministic")
	}
}
