// internal/progress/aggregate.go
package progress

import (
	"math"

	"dsa_tracker/internal/model"
)

// Percentage は completed/total を百分率に丸めて返します (0.5 は切り上げ)。
// total が 0 の場合は 0 を返します。
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ForTopic は problems のうち topic に属するものだけを数えて TopicProgress を返します。
// lookup はトピックで絞り込まれていない全体のものを渡して構いません。
// 未知の problemID を指すレコードは数えられないため、常に Completed <= Total です。
func ForTopic(problems []model.Problem, topic model.Topic, lookup Lookup) model.TopicProgress {
	total, completed := 0, 0
	for _, p := range problems {
		if p.TopicID != topic.ID {
			continue
		}
		total++
		if lookup.Completed(p.ID) {
			completed++
		}
	}
	return model.TopicProgress{
		TopicID:    topic.ID,
		Name:       topic.Name,
		Total:      total,
		Completed:  completed,
		Percentage: Percentage(completed, total),
	}
}

// ForTopics は topics の順序を保ったまま各トピックの進捗を返します。
func ForTopics(topics []model.Topic, problems []model.Problem, lookup Lookup) []model.TopicProgress {
	result := make([]model.TopicProgress, 0, len(topics))
	for _, t := range topics {
		result = append(result, ForTopic(problems, t, lookup))
	}
	return result
}

// Overall は全問題に対する進捗を返します。
// トピック別の結果を合計するのではなく、どのトピックにも属さない問題も数えます。
func Overall(problems []model.Problem, lookup Lookup) model.OverallProgress {
	completed := 0
	for _, p := range problems {
		if lookup.Completed(p.ID) {
			completed++
		}
	}
	return model.OverallProgress{
		TotalProblems:     len(problems),
		CompletedProblems: completed,
		Percentage:        Percentage(completed, len(problems)),
	}
}

// CountByDifficulty は難易度ごとの問題数を返します。
func CountByDifficulty(problems []model.Problem) map[model.Difficulty]int {
	counts := make(map[model.Difficulty]int)
	for _, p := range problems {
		counts[p.Difficulty]++
	}
	return counts
}
