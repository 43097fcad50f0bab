package capture

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/detector"
)

var _ frameSource = &frameSourceMock{}

type frameSourceMock struct {
	SnapshotFunc func(ctx context.Context) (detector.Frame, error)

	calls struct {
		Snapshot []struct {
			Ctx context.Context
		}
	}
	lockSnapshot sync.RWMutex
}

func (mock *frameSourceMock) Snapshot(ctx context.Context) (detector.Frame, error) {
	if mock.SnapshotFunc == nil {
		panic("frameSourceMock.SnapshotFunc: method is nil but frameSource.Snapshot was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSnapshot.Lock()
	mock.calls.Snapshot = append(mock.calls.Snapshot, callInfo)
	mock.lockSnapshot.Unlock()
	return mock.SnapshotFunc(ctx)
}

func (mock *frameSourceMock) SnapshotCalls() []struct {
	Ctx context.Context
} {
	mock.lockSnapshot.RLock()
	calls := mock.calls.Snapshot
	mock.lockSnapshot.RUnlock()
	return calls
}
