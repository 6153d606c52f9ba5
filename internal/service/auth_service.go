//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"
	"dsa_tracker/internal/remote"
	"dsa_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService はリモートでの認証と、ローカルのセッション管理を担います。
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, session *model.Session) error
	Authenticate(ctx context.Context, tokenString string) (*model.Session, error)
	Profile(ctx context.Context, session *model.Session) (*model.UserProfile, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type authService struct {
	db          *gorm.DB
	sessionRepo repository.SessionRepository
	remote      remote.Client
	boards      *BoardRegistry
	cfg         *config.Config
	now         func() time.Time
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, sessionRepo repository.SessionRepository, remoteClient remote.Client, boards *BoardRegistry, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		sessionRepo: sessionRepo,
		remote:      remoteClient,
		boards:      boards,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Register はリモートにユーザーを登録し、そのままログイン状態にします。
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	auth, err := s.remote.Register(ctx, req)
	if err != nil {
		logger.Warn("Remote registration failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, model.ErrConflict):
			return nil, model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", err)
		case errors.Is(err, model.ErrInvalidInput):
			return nil, model.NewAppError("INVALID_INPUT", "登録内容が正しくありません。", "", err)
		}
		return nil, model.NewAppError("REGISTER_FAILED", "ユーザー登録に失敗しました。", "", fmt.Errorf("%w: %w", model.ErrFetchFailed, err))
	}

	return s.startSession(ctx, auth)
}

// Login はリモートで認証し、ローカルセッションとセッションJWTを発行します。
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	auth, err := s.remote.Login(ctx, req)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) || errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Login failed: invalid credentials", "email", req.Email)
			return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err))
		}
		logger.Error("Remote login failed", "email", req.Email, "error", err)
		return nil, model.NewAppError("LOGIN_FAILED", "ログイン処理中にエラーが発生しました。", "", fmt.Errorf("%w: %w", model.ErrFetchFailed, err))
	}

	return s.startSession(ctx, auth)
}

func (s *authService) startSession(ctx context.Context, auth *model.RemoteAuth) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	if auth.Token == "" {
		logger.Error("Remote auth returned an empty token", "user_id", auth.Profile.ID)
		return nil, model.NewAppError("LOGIN_FAILED", "ログイン処理中にエラーが発生しました。", "", fmt.Errorf("%w: empty remote token", model.ErrFetchFailed))
	}

	now := s.now()
	session := &model.Session{
		SessionID:   uuid.New(),
		UserID:      auth.Profile.ID,
		UserName:    auth.Profile.Name,
		Email:       auth.Profile.Email,
		RemoteToken: auth.Token,
		ExpiresAt:   now.Add(s.cfg.Session.TTL),
	}
	if err := s.sessionRepo.Create(ctx, s.db, session); err != nil {
		logger.Error("Failed to create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの作成に失敗しました。", "", err)
	}

	tokenString, err := s.signSessionToken(session, now)
	if err != nil {
		logger.Error("Failed to sign session token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	logger.Info("Session started", "user_id", session.UserID, "session_id", session.SessionID)
	return &model.LoginResponse{
		AccessToken: tokenString,
		User:        session.Profile(),
	}, nil
}

func (s *authService) signSessionToken(session *model.Session, now time.Time) (string, error) {
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.SessionID.String(),
			Issuer:    s.cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}

// Authenticate はセッションJWTを検証し、保存済みのセッションを返します。
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*model.Session, error) {
	logger := middleware.GetLogger(ctx)

	claims := &model.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.JWT.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.NewAppError("SESSION_EXPIRED", "セッションの有効期限が切れました。再度ログインしてください。", "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err))
		}
		return nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err))
	}

	sessionID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, model.NewAppError("INVALID_TOKEN", "トークンのセッション情報が不正です。", "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err))
	}

	session, err := s.sessionRepo.FindByID(ctx, s.db, sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ログアウト済み
			return nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つかりません。再度ログインしてください。", "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err))
		}
		logger.Error("Failed to load session", "session_id", sessionID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	if session.Expired(s.now()) {
		s.boards.Evict(session.SessionID)
		if err := s.sessionRepo.Delete(ctx, s.db, session.SessionID); err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Warn("Failed to delete expired session", "session_id", session.SessionID, "error", err)
		}
		return nil, model.NewAppError("SESSION_EXPIRED", "セッションの有効期限が切れました。再度ログインしてください。", "", model.ErrUnauthorized)
	}

	return session, nil
}

// Logout はセッションと、そのセッションのトグル状態を破棄します。
func (s *authService) Logout(ctx context.Context, session *model.Session) error {
	logger := middleware.GetLogger(ctx)

	s.boards.Evict(session.SessionID)
	if err := s.sessionRepo.Delete(ctx, s.db, session.SessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		logger.Error("Failed to delete session", "session_id", session.SessionID, "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ログアウト処理に失敗しました。", "", err)
	}
	logger.Info("Session ended", "session_id", session.SessionID)
	return nil
}

// Profile はリモートから最新のプロフィールを取得します。
func (s *authService) Profile(ctx context.Context, session *model.Session) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.remote.GetProfile(ctx, session.RemoteToken)
	if err != nil {
		logger.Warn("Failed to fetch profile", "error", err)
		return nil, remoteFetchError(err)
	}
	return profile, nil
}

// PurgeExpired は期限切れのセッションを削除し、削除件数を返します。
func (s *authService) PurgeExpired(ctx context.Context) (int64, error) {
	logger := middleware.GetLogger(ctx)

	deleted, err := s.sessionRepo.DeleteExpired(ctx, s.db, s.now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.Info("Expired sessions purged", "count", deleted)
	}
	return deleted, nil
}

// remoteFetchError はリモート取得の失敗をクライアント向けのエラーに変換します。
func remoteFetchError(err error) *model.AppError {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return model.NewAppError("REMOTE_UNAUTHORIZED", "リモートサービスの認証が切れました。再度ログインしてください。", "", err)
	case errors.Is(err, model.ErrNotFound):
		return model.NewAppError("NOT_FOUND", "指定されたリソースが見つかりません。", "", err)
	}
	return model.NewAppError("FETCH_FAILED", "データの取得に失敗しました。時間をおいて再度お試しください。", "", fmt.Errorf("%w: %w", model.ErrFetchFailed, err))
}
