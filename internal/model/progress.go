// internal/model/progress.go
package model

// ProgressRecord はユーザーごと・問題ごとの完了フラグ。
// ユーザーはセッションから暗黙に決まるため保持しません。
type ProgressRecord struct {
	ProblemID string `json:"problemId"`
	Completed bool   `json:"completed"`
}

// TopicProgress はトピック単位の集計結果
type TopicProgress struct {
	TopicID    string `json:"topic_id"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
}

// OverallProgress は全問題に対する集計結果
type OverallProgress struct {
	TotalProblems     int `json:"total_problems"`
	CompletedProblems int `json:"completed_problems"`
	Percentage        int `json:"percentage"`
}
