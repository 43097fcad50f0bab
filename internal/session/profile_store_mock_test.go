package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

var _ profileStore = &profileStoreMock{}

type profileStoreMock struct {
	UpsertFunc func(ctx context.Context, p domain.Profile) error

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   domain.Profile
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *profileStoreMock) Upsert(ctx context.Context, p domain.Profile) error {
	if mock.UpsertFunc == nil {
		panic("profileStoreMock.UpsertFunc: method is nil but profileStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *profileStoreMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
