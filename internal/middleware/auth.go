package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dsa_tracker/internal/model"
	"dsa_tracker/internal/webutil"
)

// SessionAuthenticator はセッションJWTを検証し、有効なセッションを返します。
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, tokenString string) (*model.Session, error)
}

// SessionAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// セッションをリクエストコンテキストに格納するミドルウェア
func SessionAuthMiddleware(auth SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Session auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
				logger.Warn("Session auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized)
				webutil.HandleError(w, logger, appErr)
				return
			}

			session, err := auth.Authenticate(r.Context(), headerParts[1])
			if err != nil {
				logger.Warn("Session auth failed", "error", err)
				var appErr *model.AppError
				if !errors.As(err, &appErr) {
					err = model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)
				}
				webutil.HandleError(w, logger, err)
				return
			}

			ctx := context.WithValue(r.Context(), model.SessionKey, session)
			ctx = WithLogger(ctx, logger.With("user_id", session.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext は SessionAuthMiddleware が格納したセッションを返します。
func GetSessionFromContext(ctx context.Context) (*model.Session, error) {
	session, ok := ctx.Value(model.SessionKey).(*model.Session)
	if !ok || session == nil {
		// ミドルウェアが正しく動作していない等の内部エラー
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからセッション情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return session, nil
}
