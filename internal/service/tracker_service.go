//go:generate mockery --name TrackerService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"dsa_tracker/internal/config"
	"dsa_tracker/internal/middleware"
	"dsa_tracker/internal/model"
	"dsa_tracker/internal/progress"
	"dsa_tracker/internal/remote"

	"golang.org/x/sync/errgroup"
)

// TrackerService は画面単位のデータ取得・集計とトグルを担います。
type TrackerService interface {
	ListTopics(ctx context.Context, session *model.Session) ([]model.Topic, error)
	Dashboard(ctx context.Context, session *model.Session) (*model.DashboardView, error)
	TopicView(ctx context.Context, session *model.Session, topicID string) (*model.TopicView, error)
	Toggle(ctx context.Context, session *model.Session, problemID string) (*model.ToggleResult, error)
}

type trackerService struct {
	remote     remote.Client
	boards     *BoardRegistry
	toggleMode string
}

func NewTrackerService(remoteClient remote.Client, boards *BoardRegistry, cfg *config.Config) TrackerService {
	return &trackerService{
		remote:     remoteClient,
		boards:     boards,
		toggleMode: cfg.Remote.ToggleMode,
	}
}

func (s *trackerService) ListTopics(ctx context.Context, session *model.Session) ([]model.Topic, error) {
	logger := middleware.GetLogger(ctx)

	topics, err := s.remote.ListTopics(ctx, session.RemoteToken)
	if err != nil {
		logger.Error("Failed to fetch topics", "error", err)
		return nil, remoteFetchError(err)
	}
	if topics == nil {
		topics = []model.Topic{}
	}
	return topics, nil
}

// Dashboard は全トピック・全問題・全進捗を並行に取得し、すべて揃ってから集計します。
// どれか1つでも失敗した場合は集計結果を返しません。
func (s *trackerService) Dashboard(ctx context.Context, session *model.Session) (*model.DashboardView, error) {
	logger := middleware.GetLogger(ctx)
	token := session.RemoteToken

	var (
		topics   []model.Topic
		problems []model.Problem
		records  []model.ProgressRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		topics, err = s.remote.ListTopics(gctx, token)
		return wrapFetch("topics", err)
	})
	g.Go(func() (err error) {
		problems, err = s.remote.ListProblems(gctx, token)
		return wrapFetch("problems", err)
	})
	g.Go(func() (err error) {
		records, err = s.remote.ListProgress(gctx, token)
		return wrapFetch("progress", err)
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to fetch dashboard data", "error", err)
		return nil, remoteFetchError(err)
	}

	board := s.boards.Get(session.SessionID)
	board.Reset(progress.Normalize(records))
	lookup := board.Snapshot()

	return &model.DashboardView{
		User:    session.Profile(),
		Overall: progress.Overall(problems, lookup),
		Topics:  progress.ForTopics(topics, problems, lookup),
	}, nil
}

// TopicView はトピック・問題・進捗を並行に取得し、トピック画面のデータを組み立てます。
func (s *trackerService) TopicView(ctx context.Context, session *model.Session, topicID string) (*model.TopicView, error) {
	logger := middleware.GetLogger(ctx).With("topic_id", topicID)
	token := session.RemoteToken

	var (
		topic    *model.Topic
		problems []model.Problem
		records  []model.ProgressRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		topic, err = s.remote.GetTopic(gctx, token, topicID)
		return wrapFetch("topic", err)
	})
	g.Go(func() (err error) {
		problems, err = s.remote.ListProblemsByTopic(gctx, token, topicID)
		return wrapFetch("problems", err)
	})
	g.Go(func() (err error) {
		records, err = s.remote.ListProgressByTopic(gctx, token, topicID)
		return wrapFetch("progress", err)
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Topic not found")
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "指定されたトピックが見つかりません。", "topic_id", err)
		}
		logger.Error("Failed to fetch topic data", "error", err)
		return nil, remoteFetchError(err)
	}

	scope := make([]string, 0, len(problems))
	for _, p := range problems {
		scope = append(scope, p.ID)
	}
	board := s.boards.Get(session.SessionID)
	board.Merge(progress.Normalize(records), scope)
	lookup := board.Snapshot()

	views := make([]model.ProblemView, 0, len(problems))
	for _, p := range problems {
		views = append(views, model.ProblemView{Problem: p, Completed: lookup.Completed(p.ID)})
	}

	return &model.TopicView{
		Topic:        *topic,
		Problems:     views,
		Progress:     progress.ForTopic(problems, *topic, lookup),
		Difficulties: progress.CountByDifficulty(problems),
	}, nil
}

// Toggle はセッションの Reconciler を通して問題の完了フラグを反転します。
func (s *trackerService) Toggle(ctx context.Context, session *model.Session, problemID string) (*model.ToggleResult, error) {
	logger := middleware.GetLogger(ctx).With("problem_id", problemID)

	board := s.boards.Get(session.SessionID)
	if !board.Known(problemID) {
		// 再起動後などで現在の値が分からないと、反転先を誤るのでリモートから読み込む
		records, err := s.remote.ListProgress(ctx, session.RemoteToken)
		if err != nil {
			logger.Error("Failed to load progress before toggle", "error", err)
			return nil, remoteFetchError(err)
		}
		board.Merge(progress.Normalize(records), []string{problemID})
	}

	completed, err := board.Toggle(ctx, problemID, s.commitFunc(session.RemoteToken))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrToggleInFlight):
			logger.Warn("Toggle rejected: previous request still in flight")
			return nil, model.NewAppError("TOGGLE_IN_FLIGHT", "前回の更新が完了していません。しばらくしてから再度お試しください。", "problem_id", err)
		case errors.Is(err, model.ErrUnauthorized):
			logger.Warn("Toggle failed: remote session expired", "error", err)
			return nil, model.NewAppError("REMOTE_UNAUTHORIZED", "リモートサービスの認証が切れました。再度ログインしてください。", "", err)
		}
		logger.Error("Toggle failed, rolled back", "error", err, "completed", completed)
		return nil, model.NewAppError("TOGGLE_FAILED", "進捗の更新に失敗しました。", "problem_id", err)
	}

	logger.Info("Problem toggled", "completed", completed)
	return &model.ToggleResult{ProblemID: problemID, Completed: completed}, nil
}

// commitFunc は設定されたモードでリモートに反映する CommitFunc を返します。
func (s *trackerService) commitFunc(token string) progress.CommitFunc {
	return func(ctx context.Context, problemID string, completed bool) (bool, error) {
		var (
			record *model.ProgressRecord
			err    error
		)
		if s.toggleMode == config.ToggleModeToggle {
			record, err = s.remote.ToggleProgress(ctx, token, problemID)
		} else {
			record, err = s.remote.SetProgress(ctx, token, problemID, completed)
		}
		if err != nil {
			return false, err
		}
		if record == nil {
			return completed, nil
		}
		// リモートが反転する場合はローカルとずれることがある。リモートの値を確定値にする。
		if record.Completed != completed {
			middleware.GetLogger(ctx).Warn("Remote result differs from local value, adopting remote",
				"problem_id", problemID, "local", completed, "remote", record.Completed)
		}
		return record.Completed, nil
	}
}

func wrapFetch(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("fetch %s: %w", what, err)
}
