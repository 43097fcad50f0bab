package detector

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

// StaticBackend reports a fixed number of faces for every frame. It serves
// local runs without an inference server and tests.
type StaticBackend struct {
	Faces   int
	InitErr error
	Err     error
	// Delay is applied to every DetectFaces call.
	Delay time.Duration

	mu     sync.Mutex
	calls  int
	closed bool
}

// NewStaticBackend returns a backend that always finds n faces.
func NewStaticBackend(n int) *StaticBackend {
	return &StaticBackend{Faces: n}
}

func (b *StaticBackend) Init(ctx context.Context) error {
	if b.InitErr != nil {
		return b.InitErr
	}
	return ctx.Err()
}

func (b *StaticBackend) DetectFaces(ctx context.Context, f Frame) ([]domain.FaceRegion, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()

	if b.Delay > 0 {
		select {
		case <-time.After(b.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if b.Err != nil {
		return nil, b.Err
	}

	faces := make([]domain.FaceRegion, b.Faces)
	for i := range faces {
		faces[i] = domain.FaceRegion{
			X:      float64(f.Width) / 4,
			Y:      float64(f.Height) / 4,
			Width:  float64(f.Width) / 2,
			Height: float64(f.Height) / 2,
			Score:  0.99,
		}
	}
	return faces, nil
}

func (b *StaticBackend) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	return nil
}

// Calls returns the number of DetectFaces invocations.
func (b *StaticBackend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// Closed reports whether Close was called.
func (b *StaticBackend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// Shared wraps a backend owned by someone else so that a tab's adapter can
// use it without closing it.
func Shared(b Backend) Backend { return sharedBackend{b} }

type sharedBackend struct{ Backend }

func (sharedBackend) Close() error { return nil }
