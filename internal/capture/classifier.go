package capture

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/detector"
	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

// Classifier assigns a mood to a frame in which faces were found.
type Classifier interface {
	Classify(ctx context.Context, f detector.Frame, faces []domain.FaceRegion) (domain.Mood, error)
}

// RandomClassifier draws a mood uniformly at random. It performs no affect
// inference.
type RandomClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomClassifier creates a classifier drawing from src. A nil src uses
// a randomly seeded PCG.
func NewRandomClassifier(src rand.Source) *RandomClassifier {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomClassifier{rng: rand.New(src)}
}

func (c *RandomClassifier) Classify(context.Context, detector.Frame, []domain.FaceRegion) (domain.Mood, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.Mood(c.rng.IntN(domain.MoodCount)), nil
}

// affectService is the remote affect classifier.
type affectService interface {
	Classify(ctx context.Context, f detector.Frame) (domain.Mood, error)
}

// RemoteClassifier asks the inference server for the mood.
type RemoteClassifier struct {
	svc affectService
}

// NewRemoteClassifier creates a classifier backed by svc.
func NewRemoteClassifier(svc affectService) *RemoteClassifier {
	return &RemoteClassifier{svc: svc}
}

func (c *RemoteClassifier) Classify(ctx context.Context, f detector.Frame, _ []domain.FaceRegion) (domain.Mood, error) {
	mood, err := c.svc.Classify(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("capture.RemoteClassifier: %w", err)
	}
	return mood, nil
}
