package handlers_test

import (
	"net/http"
	"testing"

	"dsa_tracker/internal/model"
	"dsa_tracker/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-session-token"

// newHandlerFixture はサービスをモックにしたテストサーバーを起動します。
// validToken は session に解決され、それ以外のトークンは INVALID_TOKEN になります。
func newHandlerFixture(t *testing.T) (*mocks.AuthService, *mocks.TrackerService, *model.Session, func(details httpRequestDetails, exp httpResponseExpectations) []byte) {
	t.Helper()
	authSvc := mocks.NewAuthService(t)
	trackerSvc := mocks.NewTrackerService(t)
	session := &model.Session{SessionID: uuid.New(), UserID: "u1", UserName: "Ada", Email: "ada@example.com", RemoteToken: "remote-token"}

	authSvc.On("Authenticate", mock.Anything, validToken).Return(session, nil).Maybe()
	authSvc.On("Authenticate", mock.Anything, mock.MatchedBy(func(tok string) bool { return tok != validToken })).
		Return(nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized)).Maybe()

	server := newTestServer(t, setupTestDB(t), authSvc, trackerSvc)
	send := func(details httpRequestDetails, exp httpResponseExpectations) []byte {
		t.Helper()
		return sendRequest(t, server, details, exp)
	}
	return authSvc, trackerSvc, session, send
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name      string
		body      interface{}
		setupMock func(authSvc *mocks.AuthService)
		wantCode  int
		wantError string
	}{
		{
			name: "正常系: ログイン成功",
			body: model.LoginRequest{Email: "ada@example.com", Password: "secret1"},
			setupMock: func(authSvc *mocks.AuthService) {
				authSvc.On("Login", mock.Anything, &model.LoginRequest{Email: "ada@example.com", Password: "secret1"}).
					Return(&model.LoginResponse{AccessToken: "jwt", User: model.UserProfile{ID: "u1", Name: "Ada"}}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "異常系: メールアドレスの形式が不正",
			body:      model.LoginRequest{Email: "not-an-email", Password: "secret1"},
			setupMock: func(authSvc *mocks.AuthService) {},
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_ERROR",
		},
		{
			name:      "異常系: 不正なJSON",
			body:      `{"email":`,
			setupMock: func(authSvc *mocks.AuthService) {},
			wantCode:  http.StatusBadRequest,
			wantError: "INVALID_REQUEST_BODY",
		},
		{
			name:      "異常系: 未知のフィールド",
			body:      `{"email":"ada@example.com","password":"secret1","admin":true}`,
			setupMock: func(authSvc *mocks.AuthService) {},
			wantCode:  http.StatusBadRequest,
			wantError: "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 認証失敗",
			body: model.LoginRequest{Email: "ada@example.com", Password: "wrong"},
			setupMock: func(authSvc *mocks.AuthService) {
				authSvc.On("Login", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrUnauthorized)).Once()
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc, _, _, send := newHandlerFixture(t)
			tt.setupMock(authSvc)

			body := send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/auth/login", Body: tt.body},
				httpResponseExpectations{ExpectedCode: tt.wantCode, ExpectedErrorCode: tt.wantError})

			if tt.wantCode == http.StatusOK {
				resp := decodeJSON[model.LoginResponse](t, body)
				assert.Equal(t, "jwt", resp.AccessToken)
				assert.Equal(t, "Ada", resp.User.Name)
			}
		})
	}
}

func TestAuthHandler_Register_ValidationMessageIsJapanese(t *testing.T) {
	_, _, _, send := newHandlerFixture(t)

	body := send(httpRequestDetails{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/register",
		Body:   model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "123"},
	}, httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"})

	errResp := decodeJSON[model.APIErrorResponse](t, body)
	assert.Equal(t, "password", errResp.Error.Field)
	assert.Equal(t, "パスワードは6文字以上で入力してください。", errResp.Error.Message)
}

func TestAuthHandler_Register(t *testing.T) {
	authSvc, _, _, send := newHandlerFixture(t)
	req := &model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	authSvc.On("Register", mock.Anything, req).
		Return(&model.LoginResponse{AccessToken: "jwt", User: model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com"}}, nil).Once()

	body := send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/auth/register", Body: req},
		httpResponseExpectations{ExpectedCode: http.StatusCreated})
	assert.Equal(t, "jwt", decodeJSON[model.LoginResponse](t, body).AccessToken)
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	_, _, _, send := newHandlerFixture(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/topics"},
		{http.MethodGet, "/api/v1/topics/t1"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodPost, "/api/v1/problems/p1/toggle"},
		{http.MethodGet, "/api/v1/auth/profile"},
		{http.MethodPost, "/api/v1/auth/logout"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			send(httpRequestDetails{Method: p.method, Path: p.path},
				httpResponseExpectations{ExpectedCode: http.StatusUnauthorized, ExpectedErrorCode: "UNAUTHORIZED"})
			send(httpRequestDetails{Method: p.method, Path: p.path, Token: "forged"},
				httpResponseExpectations{ExpectedCode: http.StatusUnauthorized, ExpectedErrorCode: "INVALID_TOKEN"})
		})
	}
}

func TestAuthHandler_LogoutAndProfile(t *testing.T) {
	authSvc, _, session, send := newHandlerFixture(t)
	authSvc.On("Logout", mock.Anything, session).Return(nil).Once()
	authSvc.On("Profile", mock.Anything, session).Return(&model.UserProfile{ID: "u1", Name: "Ada", Email: "ada@example.com"}, nil).Once()

	body := send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/auth/profile", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusOK})
	assert.Equal(t, "Ada", decodeJSON[model.UserProfile](t, body).Name)

	send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/auth/logout", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusNoContent})
}

func TestTrackerHandler_GetDashboard(t *testing.T) {
	_, trackerSvc, session, send := newHandlerFixture(t)
	view := &model.DashboardView{
		User:    session.Profile(),
		Overall: model.OverallProgress{TotalProblems: 3, CompletedProblems: 1, Percentage: 33},
		Topics:  []model.TopicProgress{{TopicID: "t1", Name: "Arrays", Total: 3, Completed: 1, Percentage: 33}},
	}
	trackerSvc.On("Dashboard", mock.Anything, session).Return(view, nil).Once()

	body := send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/dashboard", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusOK})
	assert.Equal(t, *view, decodeJSON[model.DashboardView](t, body))
}

func TestTrackerHandler_GetDashboard_FetchFailed(t *testing.T) {
	_, trackerSvc, session, send := newHandlerFixture(t)
	trackerSvc.On("Dashboard", mock.Anything, session).
		Return(nil, model.NewAppError("FETCH_FAILED", "データの取得に失敗しました。", "", model.ErrFetchFailed)).Once()

	send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/dashboard", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusBadGateway, ExpectedErrorCode: "FETCH_FAILED"})
}

func TestTrackerHandler_GetTopic(t *testing.T) {
	_, trackerSvc, session, send := newHandlerFixture(t)
	view := &model.TopicView{
		Topic: model.Topic{ID: "t1", Name: "Arrays"},
		Problems: []model.ProblemView{
			{Problem: model.Problem{ID: "p1", TopicID: "t1", Title: "Two Sum", Difficulty: model.DifficultyEasy}, Completed: true},
		},
		Progress:     model.TopicProgress{TopicID: "t1", Name: "Arrays", Total: 1, Completed: 1, Percentage: 100},
		Difficulties: map[model.Difficulty]int{model.DifficultyEasy: 1},
	}
	trackerSvc.On("TopicView", mock.Anything, session, "t1").Return(view, nil).Once()
	trackerSvc.On("TopicView", mock.Anything, session, "missing").
		Return(nil, model.NewAppError("TOPIC_NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", model.ErrNotFound)).Once()

	body := send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/topics/t1", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusOK})
	got := decodeJSON[model.TopicView](t, body)
	require.Len(t, got.Problems, 1)
	assert.True(t, got.Problems[0].Completed)
	assert.Equal(t, 100, got.Progress.Percentage)

	send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/topics/missing", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusNotFound, ExpectedErrorCode: "TOPIC_NOT_FOUND"})
}

func TestTrackerHandler_ToggleProblem(t *testing.T) {
	tests := []struct {
		name      string
		result    *model.ToggleResult
		err       error
		wantCode  int
		wantError string
	}{
		{
			name:     "正常系",
			result:   &model.ToggleResult{ProblemID: "p1", Completed: true},
			wantCode: http.StatusOK,
		},
		{
			name:      "異常系: リモート失敗",
			err:       model.NewAppError("TOGGLE_FAILED", "進捗の更新に失敗しました。", "problem_id", model.ErrToggleFailed),
			wantCode:  http.StatusBadGateway,
			wantError: "TOGGLE_FAILED",
		},
		{
			name:      "異常系: 処理中",
			err:       model.NewAppError("TOGGLE_IN_FLIGHT", "前回の更新が完了していません。", "problem_id", model.ErrToggleInFlight),
			wantCode:  http.StatusConflict,
			wantError: "TOGGLE_IN_FLIGHT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, trackerSvc, session, send := newHandlerFixture(t)
			trackerSvc.On("Toggle", mock.Anything, session, "p1").Return(tt.result, tt.err).Once()

			body := send(httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/problems/p1/toggle", Token: validToken},
				httpResponseExpectations{ExpectedCode: tt.wantCode, ExpectedErrorCode: tt.wantError})
			if tt.result != nil {
				assert.Equal(t, *tt.result, decodeJSON[model.ToggleResult](t, body))
			}
		})
	}
}

func TestTrackerHandler_GetTopics(t *testing.T) {
	_, trackerSvc, session, send := newHandlerFixture(t)
	trackerSvc.On("ListTopics", mock.Anything, session).Return([]model.Topic{{ID: "t1", Name: "Arrays"}}, nil).Once()

	body := send(httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/topics", Token: validToken},
		httpResponseExpectations{ExpectedCode: http.StatusOK})
	assert.Equal(t, []model.Topic{{ID: "t1", Name: "Arrays"}}, decodeJSON[[]model.Topic](t, body))
}

func TestHealth(t *testing.T) {
	_, _, _, send := newHandlerFixture(t)
	body := send(httpRequestDetails{Method: http.MethodGet, Path: "/health"}, httpResponseExpectations{ExpectedCode: http.StatusOK})
	assert.Contains(t, string(body), `"status":"ok"`)
}
