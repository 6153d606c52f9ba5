// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session はログインからログアウトまでのユーザーセッション。
// リモートサービスのベアラートークンはサーバー側にだけ保持します。
type Session struct {
	SessionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	UserName    string    `gorm:"not null" json:"user_name"`
	Email       string    `gorm:"not null" json:"email"`
	RemoteToken string    `gorm:"not null" json:"-"`
	ExpiresAt   time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired は now の時点でセッションが期限切れかどうかを返します。
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Profile はセッションに保存されたユーザー情報を返します。
func (s *Session) Profile() UserProfile {
	return UserProfile{ID: s.UserID, Name: s.UserName, Email: s.Email}
}

type ContextKey string

const (
	SessionKey ContextKey = "session"
)
