// internal/progress/reconciler.go
package progress

import (
	"context"
	"fmt"
	"sync"

	"dsa_tracker/internal/model"
)

// CommitFunc はリモートに完了フラグの変更を依頼する関数。
// completed は楽観的に適用した後の値で、戻り値はリモートが確定した値です。
type CommitFunc func(ctx context.Context, problemID string, completed bool) (bool, error)

// State は1問題の完了フラグのクライアント側から見た状態
type State struct {
	Value     bool // 表示される値 (楽観的適用を含む)
	Confirmed bool // リモートで確定した最後の値
	Pending   bool // リクエストが処理中かどうか
}

type entry struct {
	value     bool
	confirmed bool
	inFlight  int
}

// Reconciler は Lookup に対する楽観的トグルを管理します。
//
// トグルするとすぐにローカルの値を反転し、その後リモートへ反映します。
// 失敗した場合は最後に確定した値へ戻します。
// 同じ問題のリクエストが処理中の間は次のトグルを受け付けません。
type Reconciler struct {
	mu      sync.Mutex
	entries map[string]*entry
	guarded bool
	// loaded は全問題分の進捗を読み込み済みかどうか。true なら entries に無い問題は未完了と確定している。
	loaded bool
}

type Option func(*Reconciler)

// Unguarded は処理中ガードとロールバックを無効にします。
// 失敗してもローカルの値は反転したまま残り、連続トグルも並行して送られます。
func Unguarded() Option {
	return func(r *Reconciler) {
		r.guarded = false
	}
}

// NewReconciler は lookup を確定値として持つ Reconciler を返します。
// lookup が nil の場合は未読み込みの状態で作成します。
func NewReconciler(lookup Lookup, opts ...Option) *Reconciler {
	r := &Reconciler{
		entries: make(map[string]*entry, len(lookup)),
		guarded: true,
		loaded:  lookup != nil,
	}
	for _, opt := range opts {
		opt(r)
	}
	for id, completed := range lookup {
		r.entries[id] = &entry{value: completed, confirmed: completed}
	}
	return r
}

// Reset は全問題分の進捗 lookup で確定値を置き換えます。
// 処理中の問題は楽観的な値を保ったままにします。
func (r *Reconciler) Reset(lookup Lookup) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loaded = true
	for id, e := range r.entries {
		if e.inFlight > 0 {
			continue
		}
		if _, ok := lookup[id]; !ok {
			delete(r.entries, id)
		}
	}
	for id, completed := range lookup {
		e, ok := r.entries[id]
		if !ok {
			r.entries[id] = &entry{value: completed, confirmed: completed}
			continue
		}
		if e.inFlight > 0 {
			continue
		}
		e.value = completed
		e.confirmed = completed
	}
}

// Merge は一部の問題だけを取得した lookup を取り込みます。
// scope に含まれ lookup に無い問題は未完了として確定し、scope 外の問題はそのまま残します。
func (r *Reconciler) Merge(lookup Lookup, scope []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range scope {
		if _, ok := lookup[id]; !ok {
			r.setConfirmed(id, false)
		}
	}
	for id, completed := range lookup {
		r.setConfirmed(id, completed)
	}
}

func (r *Reconciler) setConfirmed(id string, completed bool) {
	e, ok := r.entries[id]
	if !ok {
		r.entries[id] = &entry{value: completed, confirmed: completed}
		return
	}
	if e.inFlight > 0 {
		return
	}
	e.value = completed
	e.confirmed = completed
}

// Known は problemID の確定値を持っているかどうかを返します。
// false の場合、Toggle の前にリモートの進捗を読み込む必要があります。
func (r *Reconciler) Known(problemID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return true
	}
	_, ok := r.entries[problemID]
	return ok
}

// Value は problemID の現在の表示値を返します。
func (r *Reconciler) Value(problemID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[problemID]; ok {
		return e.value
	}
	return false
}

// State は problemID の状態を返します。
func (r *Reconciler) State(problemID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[problemID]
	if !ok {
		return State{}
	}
	return State{Value: e.value, Confirmed: e.confirmed, Pending: e.inFlight > 0}
}

// Snapshot は現在の表示値のコピーを返します。集計関数にそのまま渡せます。
func (r *Reconciler) Snapshot() Lookup {
	r.mu.Lock()
	defer r.mu.Unlock()
	lookup := make(Lookup, len(r.entries))
	for id, e := range r.entries {
		lookup[id] = e.value
	}
	return lookup
}

// Toggle は problemID を楽観的に反転し、commit でリモートへ反映します。
// 戻り値はトグル処理後の表示値です。成功時はリモートが確定した値を表示値にします。
//
// 処理中のリクエストがある場合は model.ErrToggleInFlight を返し、値は変えません。
// commit が失敗した場合は確定値に戻し、model.ErrToggleFailed をラップして返します。
func (r *Reconciler) Toggle(ctx context.Context, problemID string, commit CommitFunc) (bool, error) {
	r.mu.Lock()
	e, ok := r.entries[problemID]
	if !ok {
		e = &entry{}
		r.entries[problemID] = e
	}
	if r.guarded && e.inFlight > 0 {
		value := e.value
		r.mu.Unlock()
		return value, fmt.Errorf("problem %s: %w", problemID, model.ErrToggleInFlight)
	}
	desired := !e.value
	e.value = desired
	e.inFlight++
	r.mu.Unlock()

	confirmed, err := commit(ctx, problemID, desired)

	r.mu.Lock()
	defer r.mu.Unlock()
	e.inFlight--
	if err != nil {
		if r.guarded {
			e.value = e.confirmed
		}
		return e.value, fmt.Errorf("problem %s: %w: %w", problemID, model.ErrToggleFailed, err)
	}
	e.confirmed = confirmed
	if r.guarded {
		e.value = confirmed
	}
	return e.value, nil
}
