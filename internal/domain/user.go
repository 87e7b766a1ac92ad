package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound 按 id 查不到记录
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate 唯一索引冲突（username / email 已被占用）
	ErrDuplicate = errors.New("duplicate user field")
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// UserPatch 部分更新：nil 表示该字段不改
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Name         *string
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	List() ([]User, error)
	Update(id uint, p UserPatch) (*User, error)
	Delete(id uint) error
}
