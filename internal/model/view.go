// internal/model/view.go
package model

// ProblemView はトピック画面に表示する問題1件 (完了フラグ付き)
type ProblemView struct {
	Problem
	Completed bool `json:"completed"`
}

// TopicView はトピック画面のレスポンスDTO
type TopicView struct {
	Topic        Topic              `json:"topic"`
	Problems     []ProblemView      `json:"problems"`
	Progress     TopicProgress      `json:"progress"`
	Difficulties map[Difficulty]int `json:"difficulties"`
}

// DashboardView はダッシュボード画面のレスポンスDTO
type DashboardView struct {
	User    UserProfile     `json:"user"`
	Overall OverallProgress `json:"overall"`
	Topics  []TopicProgress `json:"topics"`
}

// ToggleResult はトグル操作後の問題の状態
type ToggleResult struct {
	ProblemID string `json:"problem_id"`
	Completed bool   `json:"completed"`
}
