package auth

import (
	"context"
	"time"
)

// User 是 users 表的 GORM 模型（最小可用）。
// PasswordHash 存 sha256 的 hex（64 位小写），不存明文。
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `gorm:"size:64;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// CredentialStore 是凭据存储的窄接口。
// 业务层只依赖这四个操作，方便替换实现与测试。
type CredentialStore interface {
	// Exists 判断用户名是否已注册。
	Exists(ctx context.Context, username string) (bool, error)
	// GetHash 返回存储的密码哈希；用户不存在时返回 ErrUserNotFound。
	GetHash(ctx context.Context, username string) (string, error)
	// SetHash 覆盖写入用户的密码哈希。
	SetHash(ctx context.Context, username, passwordHash string) error
	// Insert 新增用户；用户名冲突时由底层返回错误。
	Insert(ctx context.Context, username, passwordHash string) error
}
