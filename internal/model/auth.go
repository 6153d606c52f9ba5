// internal/model/auth.go
package model

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest は新規登録APIのリクエストボディ
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile はリモートサービスが返すユーザー情報
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RemoteAuth はリモートのログイン/登録の結果 (トークン + プロフィール)
type RemoteAuth struct {
	Token   string
	Profile UserProfile
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

// SessionClaims はセッションJWTのクレーム。Subject にセッションIDを入れます。
type SessionClaims struct {
	jwt.RegisteredClaims
}
