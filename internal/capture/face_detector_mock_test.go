package capture

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

var _ faceDetector = &faceDetectorMock{}

type faceDetectorMock struct {
	IsReadyFunc func() bool
	InitErrFunc func() error
	SettledFunc func() <-chan struct{}
	DetectFunc  func(ctx context.Context, f detector.Frame) ([]domain.FaceRegion, error)

	calls struct {
		IsReady []struct{}
		InitErr []struct{}
		Settled []struct{}
		Detect []struct {
			Ctx context.Context
			F   detector.Frame
		}
	}
	lockIsReady sync.RWMutex
	lockInitErr sync.RWMutex
	lockSettled sync.RWMutex
	lockDetect  sync.RWMutex
}

func (mock *faceDetectorMock) IsReady() bool {
	if mock.IsReadyFunc == nil {
		panic("faceDetectorMock.IsReadyFunc: method is nil but faceDetector.IsReady was just called")
	}
	callInfo := struct{}{}
	mock.lockIsReady.Lock()
	mock.calls.IsReady = append(mock.calls.IsReady, callInfo)
	mock.lockIsReady.Unlock()
	return mock.IsReadyFunc()
}

func (mock *faceDetectorMock) IsReadyCalls() []struct{} {
	mock.lockIsReady.RLock()
	calls := mock.calls.IsReady
	mock.lockIsReady.RUnlock()
	return calls
}

func (mock *faceDetectorMock) InitErr() error {
	if mock.InitErrFunc == nil {
		panic("faceDetectorMock.InitErrFunc: method is nil but faceDetector.InitErr was just called")
	}
	callInfo := struct{}{}
	mock.lockInitErr.Lock()
	mock.calls.InitErr = append(mock.calls.InitErr, callInfo)
	mock.lockInitErr.Unlock()
	return mock.InitErrFunc()
}

func (mock *faceDetectorMock) InitErrCalls() []struct{} {
	mock.lockInitErr.RLock()
	calls := mock.calls.InitErr
	mock.lockInitErr.RUnlock()
	return calls
}

func (mock *faceDetectorMock) Settled() <-chan struct{} {
	if mock.SettledFunc == nil {
		panic("faceDetectorMock.SettledFunc: method is nil but faceDetector.Settled was just called")
	}
	callInfo := struct{}{}
	mock.lockSettled.Lock()
	mock.calls.Settled = append(mock.calls.Settled, callInfo)
	mock.lockSettled.Unlock()
	return mock.SettledFunc()
}

func (mock *faceDetectorMock) SettledCalls() []struct{} {
	mock.lockSettled.RLock()
	calls := mock.calls.Settled
	mock.lockSettled.RUnlock()
	return calls
}

func (mock *faceDetectorMock) Detect(ctx context.Context, f detector.Frame) ([]domain.FaceRegion, error) {
	if mock.DetectFunc == nil {
		panic("faceDetectorMock.DetectFunc: method is nil but faceDetector.Detect was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   detector.Frame
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockDetect.Lock()
	mock.calls.Detect = append(mock.calls.Detect, callInfo)
	mock.lockDetect.Unlock()
	return mock.DetectFunc(ctx, f)
}

func (mock *faceDetectorMock) DetectCalls() []struct {
	Ctx context.Context
	F   detector.Frame
} {
	mock.lockDetect.RLock()
	calls := mock.calls.Detect
	mock.lockDetect.RUnlock()
	return calls
}
