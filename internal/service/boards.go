package service

import (
	"sync"

	"dsa_tracker/internal/progress"

	"github.com/google/uuid"
)

// BoardRegistry はセッションごとの Reconciler を保持します。
// Reconciler はプロセス内の状態なので、再起動すると次の画面取得で作り直されます。
type BoardRegistry struct {
	mu     sync.RWMutex
	boards map[uuid.UUID]*progress.Reconciler
	opts   []progress.Option
}

func NewBoardRegistry(opts ...progress.Option) *BoardRegistry {
	return &BoardRegistry{
		boards: make(map[uuid.UUID]*progress.Reconciler),
		opts:   opts,
	}
}

// Get はセッションの Reconciler を返します。無ければ空の状態で作成します。
func (b *BoardRegistry) Get(sessionID uuid.UUID) *progress.Reconciler {
	b.mu.RLock()
	r, ok := b.boards[sessionID]
	b.mu.RUnlock()
	if ok {
		return r
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if r, ok := b.boards[sessionID]; ok {
		return r
	}
	r = progress.NewReconciler(nil, b.opts...)
	b.boards[sessionID] = r
	return r
}

// Evict はログアウトや期限切れのセッションの状態を破棄します。
func (b *BoardRegistry) Evict(sessionID uuid.UUID) {
	b.mu.Lock()
	delete(b.boards, sessionID)
	b.mu.Unlock()
}

func (b *BoardRegistry) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.boards)
}
