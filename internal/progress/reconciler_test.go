package progress_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"dsa_tracker/internal/model"
	"dsa_tracker/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pendingCall はリモートに届いたが、まだ応答していないリクエスト
type pendingCall struct {
	problemID string
	completed bool
	release   chan error
}

// fakeRemote はテストから応答の順序を制御できるリモート。
// flip が true の場合はリモートがフラグを反転し (旧来のトグル)、false の場合は値をセットします。
type fakeRemote struct {
	mu    sync.Mutex
	state map[string]bool
	flip  bool
	calls chan *pendingCall
}

func newFakeRemote(flip bool, initial map[string]bool) *fakeRemote {
	state := make(map[string]bool)
	for k, v := range initial {
		state[k] = v
	}
	return &fakeRemote{state: state, flip: flip, calls: make(chan *pendingCall, 8)}
}

func (f *fakeRemote) commit(ctx context.Context, problemID string, completed bool) (bool, error) {
	call := &pendingCall{problemID: problemID, completed: completed, release: make(chan error)}
	f.calls <- call
	err := <-call.release
	if err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flip {
		f.state[problemID] = !f.state[problemID]
	} else {
		f.state[problemID] = completed
	}
	return f.state[problemID], nil
}

func (f *fakeRemote) value(problemID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state[problemID]
}

func (f *fakeRemote) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case call := <-f.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("remote call did not arrive")
		return nil
	}
}

type toggleResult struct {
	value bool
	err   error
}

func toggleAsync(r *progress.Reconciler, remote *fakeRemote, problemID string) <-chan toggleResult {
	done := make(chan toggleResult, 1)
	go func() {
		v, err := r.Toggle(context.Background(), problemID, remote.commit)
		done <- toggleResult{value: v, err: err}
	}()
	return done
}

func okCommit(ctx context.Context, problemID string, completed bool) (bool, error) {
	return completed, nil
}

func TestReconciler_ToggleSuccess(t *testing.T) {
	r := progress.NewReconciler(progress.Lookup{"p1": false})

	value, err := r.Toggle(context.Background(), "p1", okCommit)
	require.NoError(t, err)
	assert.True(t, value)
	assert.Equal(t, progress.State{Value: true, Confirmed: true}, r.State("p1"))

	value, err = r.Toggle(context.Background(), "p1", okCommit)
	require.NoError(t, err)
	assert.False(t, value)
	assert.Equal(t, progress.State{}, r.State("p1"))
}

func TestReconciler_UnknownProblemStartsFalse(t *testing.T) {
	r := progress.NewReconciler(nil)

	var sent bool
	value, err := r.Toggle(context.Background(), "new", func(ctx context.Context, id string, completed bool) (bool, error) {
		sent = completed
		return completed, nil
	})
	require.NoError(t, err)
	assert.True(t, value)
	assert.True(t, sent)
}

func TestReconciler_OptimisticValueVisibleWhilePending(t *testing.T) {
	remote := newFakeRemote(false, nil)
	r := progress.NewReconciler(progress.Lookup{"p1": false})

	done := toggleAsync(r, remote, "p1")
	call := remote.next(t)

	// 応答前に表示値はすでに反転している
	assert.Equal(t, progress.State{Value: true, Confirmed: false, Pending: true}, r.State("p1"))
	assert.True(t, r.Snapshot().Completed("p1"))
	assert.True(t, call.completed)

	call.release <- nil
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, progress.State{Value: true, Confirmed: true}, r.State("p1"))
	assert.True(t, remote.value("p1"))
}

func TestReconciler_RollbackOnFailure(t *testing.T) {
	r := progress.NewReconciler(progress.Lookup{"p1": true})
	remoteErr := errors.New("connection reset")

	value, err := r.Toggle(context.Background(), "p1", func(ctx context.Context, id string, completed bool) (bool, error) {
		return false, remoteErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrToggleFailed)
	assert.ErrorIs(t, err, remoteErr)
	assert.True(t, value, "失敗したら確定値に戻る")
	assert.Equal(t, progress.State{Value: true, Confirmed: true}, r.State("p1"))
}

func TestReconciler_RejectsToggleWhileInFlight(t *testing.T) {
	remote := newFakeRemote(false, nil)
	r := progress.NewReconciler(progress.Lookup{"p1": false})

	first := toggleAsync(r, remote, "p1")
	call := remote.next(t)

	value, err := r.Toggle(context.Background(), "p1", remote.commit)
	assert.ErrorIs(t, err, model.ErrToggleInFlight)
	assert.True(t, value, "処理中の楽観値のまま")

	// 他の問題は影響を受けない
	other, err := r.Toggle(context.Background(), "p2", okCommit)
	require.NoError(t, err)
	assert.True(t, other)

	call.release <- nil
	res := <-first
	require.NoError(t, res.err)
	assert.True(t, r.Value("p1"))
	assert.True(t, remote.value("p1"))
}

func TestReconciler_DoubleToggleReturnsToOriginal(t *testing.T) {
	r := progress.NewReconciler(progress.Lookup{"p1": true})

	_, err := r.Toggle(context.Background(), "p1", okCommit)
	require.NoError(t, err)
	value, err := r.Toggle(context.Background(), "p1", okCommit)
	require.NoError(t, err)

	assert.True(t, value)
	assert.Equal(t, progress.State{Value: true, Confirmed: true}, r.State("p1"))
}

// ガードなしで2つのトグルを同時に送り、応答が逆順に届いた場合の最終状態を記録する。
// ローカルは偶数回の反転で元の値に戻るが、値をセットするリモートは
// 後に処理された (= 先に送った) リクエストの値になり、ローカルと食い違う。
func TestReconciler_Unguarded_OutOfOrderResponsesDiverge(t *testing.T) {
	remote := newFakeRemote(false, map[string]bool{"p1": false})
	r := progress.NewReconciler(progress.Lookup{"p1": false}, progress.Unguarded())

	first := toggleAsync(r, remote, "p1")
	callA := remote.next(t)
	second := toggleAsync(r, remote, "p1")
	callB := remote.next(t)

	assert.True(t, callA.completed)
	assert.False(t, callB.completed)
	assert.False(t, r.Value("p1"), "2回反転してローカルは元の値")

	// B が先にリモートで処理され、A が後から処理される
	callB.release <- nil
	require.NoError(t, (<-second).err)
	callA.release <- nil
	require.NoError(t, (<-first).err)

	assert.False(t, r.Value("p1"), "ローカル表示は未完了")
	assert.True(t, remote.value("p1"), "リモートは完了になっている")
	assert.True(t, r.State("p1").Confirmed, "確定値は最後に応答したリクエストのもの")
}

// リモートが反転する旧来のトグルでは、応答順に関係なく2回の反転で元に戻る。
// ただし片方が失敗するとロールバックしないため食い違いが残る。
func TestReconciler_Unguarded_RemoteFlipWithFailureDiverges(t *testing.T) {
	remote := newFakeRemote(true, map[string]bool{"p1": false})
	r := progress.NewReconciler(progress.Lookup{"p1": false}, progress.Unguarded())

	first := toggleAsync(r, remote, "p1")
	callA := remote.next(t)
	second := toggleAsync(r, remote, "p1")
	callB := remote.next(t)

	callB.release <- nil
	require.NoError(t, (<-second).err)
	callA.release <- errors.New("timeout")
	res := <-first
	assert.ErrorIs(t, res.err, model.ErrToggleFailed)

	assert.False(t, r.Value("p1"), "ローカルは2回反転したまま")
	assert.True(t, remote.value("p1"), "リモートは1回だけ反転")
}

func TestReconciler_Unguarded_NoRollback(t *testing.T) {
	r := progress.NewReconciler(progress.Lookup{"p1": false}, progress.Unguarded())

	value, err := r.Toggle(context.Background(), "p1", func(ctx context.Context, id string, completed bool) (bool, error) {
		return false, errors.New("boom")
	})
	assert.ErrorIs(t, err, model.ErrToggleFailed)
	assert.True(t, value)
	assert.Equal(t, progress.State{Value: true, Confirmed: false}, r.State("p1"))
}

func TestReconciler_Reset(t *testing.T) {
	remote := newFakeRemote(false, nil)
	r := progress.NewReconciler(progress.Lookup{"p1": false, "p2": true, "p3": true})

	done := toggleAsync(r, remote, "p1")
	call := remote.next(t)

	// p1 の処理中に再取得した結果で置き換える
	r.Reset(progress.Lookup{"p1": false, "p2": false})

	assert.True(t, r.Value("p1"), "処理中の楽観値は保持")
	assert.False(t, r.Value("p2"))
	assert.False(t, r.Value("p3"), "新しい lookup に無いものは未完了")
	assert.Equal(t, progress.Lookup{"p1": true, "p2": false}, r.Snapshot())

	call.release <- nil
	require.NoError(t, (<-done).err)
	assert.True(t, r.Value("p1"))
}

func TestReconciler_RemoteValueWins(t *testing.T) {
	// リモートが反転する旧来のトグルで、リモート側がすでに完了だった場合
	remote := newFakeRemote(true, map[string]bool{"p1": true})
	r := progress.NewReconciler(progress.Lookup{})

	done := toggleAsync(r, remote, "p1")
	call := remote.next(t)
	assert.True(t, call.completed, "ローカルは未完了から完了へ反転")
	call.release <- nil

	res := <-done
	require.NoError(t, res.err)
	assert.False(t, res.value)
	assert.Equal(t, progress.State{Value: false, Confirmed: false}, r.State("p1"))
	assert.False(t, remote.value("p1"))
}

func TestReconciler_Known(t *testing.T) {
	empty := progress.NewReconciler(nil)
	assert.False(t, empty.Known("p1"))

	empty.Merge(progress.Lookup{"p1": true}, []string{"p1", "p2"})
	assert.True(t, empty.Known("p1"))
	assert.True(t, empty.Known("p2"), "scope 内で記録の無い問題は未完了として確定")
	assert.False(t, empty.Known("p3"))

	empty.Reset(progress.Lookup{})
	assert.True(t, empty.Known("p3"), "全件読み込み後は記録の無い問題も未完了と確定")

	assert.True(t, progress.NewReconciler(progress.Lookup{}).Known("p1"))
}

func TestReconciler_MergeKeepsOtherTopics(t *testing.T) {
	remote := newFakeRemote(false, nil)
	r := progress.NewReconciler(progress.Lookup{"p1": true, "p2": true, "p4": true})

	done := toggleAsync(r, remote, "p3")
	call := remote.next(t)

	// t1 (p1, p2, p3) だけを取り直す
	r.Merge(progress.Lookup{"p1": false}, []string{"p1", "p2", "p3"})

	assert.False(t, r.Value("p1"))
	assert.False(t, r.Value("p2"), "scope 内で記録が無いものは未完了")
	assert.True(t, r.Value("p3"), "処理中の楽観値は保持")
	assert.True(t, r.Value("p4"), "scope 外は残る")

	call.release <- nil
	require.NoError(t, (<-done).err)
	assert.Equal(t, progress.State{Value: true, Confirmed: true}, r.State("p3"))
}

func TestReconciler_SnapshotFeedsAggregation(t *testing.T) {
	problems := []model.Problem{{ID: "p1", TopicID: "t1"}, {ID: "p2", TopicID: "t1"}}
	r := progress.NewReconciler(progress.Normalize(nil))

	_, err := r.Toggle(context.Background(), "p2", okCommit)
	require.NoError(t, err)

	got := progress.ForTopic(problems, arrays, r.Snapshot())
	assert.Equal(t, 1, got.Completed)
	assert.Equal(t, 50, got.Percentage)
}
