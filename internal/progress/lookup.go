// Package progress は取得済みのトピック・問題・進捗レコードから表示用の進捗を組み立てます。
// I/O は行わず、入力だけから結果が決まります。
package progress

import "dsa_tracker/internal/model"

// Lookup は problemID から完了フラグへの対応表。
// 存在しないキーは未完了 (false) として扱います。
type Lookup map[string]bool

// Completed は problemID が完了済みかどうかを返します。nil の Lookup でも安全です。
func (l Lookup) Completed(problemID string) bool {
	return l[problemID]
}

// Normalize は進捗レコードの列を Lookup に変換します。
// 同じ problemID が複数回現れた場合は、後に現れたものが優先されます。
func Normalize(records []model.ProgressRecord) Lookup {
	lookup := make(Lookup, len(records))
	for _, rec := range records {
		lookup[rec.ProblemID] = rec.Completed
	}
	return lookup
}
