// internal/model/topic.go
package model

// Topic は問題をまとめるカテゴリ (例: "Arrays", "Graphs")
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid はリモートから受け取った難易度が既知の値かどうかを返します。
// 未知の値もそのまま保持し、エラーにはしません。
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Links は問題の参考リンク。どれも省略可能。
type Links struct {
	YouTube    string `json:"youtube,omitempty"`
	LeetCode   string `json:"leetcode,omitempty"`
	Codeforces string `json:"codeforces,omitempty"`
	Article    string `json:"article,omitempty"`
}

// Problem は1つの練習問題。TopicID は所有関係ではなく参照です。
type Problem struct {
	ID          string     `json:"id"`
	TopicID     string     `json:"topic_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Links       Links      `json:"links"`
}
