package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUserNotFound 查询不到用户时返回。
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists 用户名唯一索引冲突时返回（并发注册同名用户）。
var ErrUserExists = errors.New("user already exists")

// Repo 基于 GORM/MySQL 的 CredentialStore 实现。
type Repo struct {
	db *gorm.DB
}

var _ CredentialStore = (*Repo)(nil)

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Exists(ctx context.Context, username string) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo) GetHash(ctx context.Context, username string) (string, error) {
	if r == nil || r.db == nil {
		return "", fmt.Errorf("repo db is nil")
	}
	var u User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return u.PasswordHash, nil
}

func (r *Repo) SetHash(ctx context.Context, username, passwordHash string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repo db is nil")
	}
	res := r.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) Insert(ctx context.Context, username, passwordHash string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repo db is nil")
	}
	u := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// 依赖 NewMySQL 的 TranslateError 把驱动的 1062 翻成 gorm 错误
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}
	return nil
}
