//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"

	"github.com/hashicorp/go-retryablehttp"
)

// Client はトピック・問題・進捗を保持するリモートサービスのクライアント。
// token が必要なメソッドはベアラートークンとして送ります。
type Client interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RemoteAuth, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.RemoteAuth, error)
	GetProfile(ctx context.Context, token string) (*model.UserProfile, error)

	ListTopics(ctx context.Context, token string) ([]model.Topic, error)
	GetTopic(ctx context.Context, token, topicID string) (*model.Topic, error)
	ListProblems(ctx context.Context, token string) ([]model.Problem, error)
	ListProblemsByTopic(ctx context.Context, token, topicID string) ([]model.Problem, error)
	ListProgress(ctx context.Context, token string) ([]model.ProgressRecord, error)
	ListProgressByTopic(ctx context.Context, token, topicID string) ([]model.ProgressRecord, error)

	// SetProgress は完了フラグを明示的にセットします。
	SetProgress(ctx context.Context, token, problemID string, completed bool) (*model.ProgressRecord, error)
	// ToggleProgress はリモート側でフラグを反転させます。冪等ではありません。
	ToggleProgress(ctx context.Context, token, problemID string) (*model.ProgressRecord, error)
}

// StatusError はリモートが2xx以外を返したときのエラー
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("remote %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap はステータスコードに対応するアプリケーションエラーを返します。
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return model.ErrUnauthorized
	case http.StatusForbidden:
		return model.ErrForbidden
	case http.StatusNotFound:
		return model.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return model.ErrInvalidInput
	case http.StatusConflict:
		return model.ErrConflict
	}
	return nil
}

type httpClient struct {
	baseURL string
	// reads は一覧取得などの冪等なリクエスト用 (リトライあり)
	reads *retryablehttp.Client
	// writes はトグルやログイン用 (リトライなし)
	writes *retryablehttp.Client
}

func NewClient(cfg config.RemoteConfig, logger *slog.Logger) Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &httpClient{
		baseURL: cfg.BaseURL,
		reads:   newRetryableClient(cfg.Timeout, cfg.RetryMax, cfg.RetryWait, logger),
		writes:  newRetryableClient(cfg.Timeout, 0, cfg.RetryWait, logger),
	}
}

func newRetryableClient(timeout time.Duration, retryMax int, retryWait time.Duration, logger *slog.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.HTTPClient.Timeout = timeout
	c.RetryMax = retryMax
	c.RetryWaitMin = retryWait
	c.RetryWaitMax = retryWait * 8
	c.Logger = logger.With(slog.String("component", "remote"))
	// 最後のレスポンスをそのまま受け取り、ステータスコードをこちらで解釈する
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

func (c *httpClient) Register(ctx context.Context, req *model.RegisterRequest) (*model.RemoteAuth, error) {
	var user userPayload
	if err := c.do(ctx, c.writes, http.MethodPost, "/users", "", req, &user); err != nil {
		return nil, err
	}
	return &model.RemoteAuth{Token: user.Token, Profile: user.toProfile()}, nil
}

func (c *httpClient) Login(ctx context.Context, req *model.LoginRequest) (*model.RemoteAuth, error) {
	var user userPayload
	if err := c.do(ctx, c.writes, http.MethodPost, "/users/login", "", req, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		return nil, fmt.Errorf("remote POST /users/login: empty token in response: %w", model.ErrUnauthorized)
	}
	return &model.RemoteAuth{Token: user.Token, Profile: user.toProfile()}, nil
}

func (c *httpClient) GetProfile(ctx context.Context, token string) (*model.UserProfile, error) {
	var user userPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/users/profile", token, nil, &user); err != nil {
		return nil, err
	}
	profile := user.toProfile()
	return &profile, nil
}

func (c *httpClient) ListTopics(ctx context.Context, token string) ([]model.Topic, error) {
	var payloads []topicPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/topics", token, nil, &payloads); err != nil {
		return nil, err
	}
	return convertAll(payloads, topicPayload.toModel), nil
}

func (c *httpClient) GetTopic(ctx context.Context, token, topicID string) (*model.Topic, error) {
	var payload topicPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/topics/"+url.PathEscape(topicID), token, nil, &payload); err != nil {
		return nil, err
	}
	topic := payload.toModel()
	return &topic, nil
}

func (c *httpClient) ListProblems(ctx context.Context, token string) ([]model.Problem, error) {
	var payloads []problemPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/problems", token, nil, &payloads); err != nil {
		return nil, err
	}
	return convertAll(payloads, problemPayload.toModel), nil
}

func (c *httpClient) ListProblemsByTopic(ctx context.Context, token, topicID string) ([]model.Problem, error) {
	var payloads []problemPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/problems/topic/"+url.PathEscape(topicID), token, nil, &payloads); err != nil {
		return nil, err
	}
	return convertAll(payloads, problemPayload.toModel), nil
}

func (c *httpClient) ListProgress(ctx context.Context, token string) ([]model.ProgressRecord, error) {
	var payloads []progressPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/progress", token, nil, &payloads); err != nil {
		return nil, err
	}
	return convertAll(payloads, progressPayload.toModel), nil
}

func (c *httpClient) ListProgressByTopic(ctx context.Context, token, topicID string) ([]model.ProgressRecord, error) {
	var payloads []progressPayload
	if err := c.do(ctx, c.reads, http.MethodGet, "/progress/topic/"+url.PathEscape(topicID), token, nil, &payloads); err != nil {
		return nil, err
	}
	return convertAll(payloads, progressPayload.toModel), nil
}

func (c *httpClient) SetProgress(ctx context.Context, token, problemID string, completed bool) (*model.ProgressRecord, error) {
	var payload progressPayload
	body := setProgressRequest{Completed: completed}
	if err := c.do(ctx, c.writes, http.MethodPut, "/progress/"+url.PathEscape(problemID), token, body, &payload); err != nil {
		return nil, err
	}
	if payload.ProblemID == "" {
		// 空のボディで応答するサーバーもあるため、送った値で補う
		payload = progressPayload{ProblemID: problemID, Completed: completed}
	}
	record := payload.toModel()
	return &record, nil
}

func (c *httpClient) ToggleProgress(ctx context.Context, token, problemID string) (*model.ProgressRecord, error) {
	var payload progressPayload
	body := toggleRequest{ProblemID: problemID}
	if err := c.do(ctx, c.writes, http.MethodPost, "/progress/toggle", token, body, &payload); err != nil {
		return nil, err
	}
	record := payload.toModel()
	if record.ProblemID == "" {
		record.ProblemID = problemID
	}
	return &record, nil
}

// do はリクエストを送り、2xx の場合に out へデコードします。
func (c *httpClient) do(ctx context.Context, hc *retryablehttp.Client, method, path, token string, in, out interface{}) error {
	logger := middleware.GetLogger(ctx).With(slog.String("method", method), slog.String("remote_path", path))

	// body は nil インターフェースのままにしておかないと空のボディが送られる
	var body interface{}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote %s %s: marshal request: %w", method, path, err)
		}
		body = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("remote %s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		logger.Warn("Remote request failed", slog.Any("error", err))
		return fmt.Errorf("remote %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("remote %s %s: read response: %w", method, path, err)
	}
	logger.Debug("Remote request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
		var ep errorPayload
		if json.Unmarshal(respBody, &ep) == nil {
			statusErr.Message = ep.Message
		}
		return statusErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("remote %s %s: decode response: %w", method, path, err)
	}
	return nil
}
