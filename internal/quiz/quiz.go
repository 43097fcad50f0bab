// Package quiz implements the short per-mood self-assessment quiz.
package quiz

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/metrics"
)

var (
	// ErrCompleted is returned by Answer after the last question.
	ErrCompleted = errors.New("quiz already completed")
	// ErrNotCompleted is returned by Result before the last answer.
	ErrNotCompleted = errors.New("quiz not completed")
)

// Questions returns a copy of the questions asked for mood.
func Questions(mood domain.Mood) ([]domain.Question, error) {
	if !mood.IsValid() {
		return nil, domain.NewValidationError("mood", "unknown mood")
	}
	src := questions[mood]
	out := make([]domain.Question, len(src))
	for i, q := range src {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out, nil
}

// Quiz is one run through a mood's questions. It is safe for concurrent use.
type Quiz struct {
	mu        sync.Mutex
	mood      domain.Mood
	questions []domain.Question
	index     int
	score     int
	completed bool
}

// New starts a quiz for mood at the first question with a zero score.
func New(mood domain.Mood) (*Quiz, error) {
	qs, err := Questions(mood)
	if err != nil {
		return nil, fmt.Errorf("quiz.New: %w", err)
	}
	return &Quiz{mood: mood, questions: qs}, nil
}

// Answer records the chosen option of the current question. Option i scores
// domain.PointsPerQuestion - i.
func (q *Quiz) Answer(option int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.completed {
		return fmt.Errorf("quiz.Answer: %w", ErrCompleted)
	}
	if n := len(q.questions[q.index].Options); option < 0 || option >= n {
		return fmt.Errorf("quiz.Answer: %w",
			domain.NewValidationError("option", fmt.Sprintf("must be between 0 and %d", n-1)))
	}

	q.score += domain.PointsPerQuestion - option
	if q.index < len(q.questions)-1 {
		q.index++
		return nil
	}

	q.completed = true
	res := q.resultLocked()
	metrics.RecordQuiz(q.mood.String(), res.Band.String())
	return nil
}

// Current returns the question awaiting an answer, or false once completed.
func (q *Quiz) Current() (domain.Question, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.completed {
		return domain.Question{}, false
	}
	cur := q.questions[q.index]
	cur.Options = slices.Clone(cur.Options)
	return cur, true
}

// State returns the quiz progress.
func (q *Quiz) State() domain.QuizState {
	q.mu.Lock()
	defer q.mu.Unlock()

	return domain.QuizState{
		Mood:          q.mood,
		QuestionIndex: q.index,
		Total:         len(q.questions),
		Score:         q.score,
		Completed:     q.completed,
	}
}

// Result returns the scored outcome of a completed quiz.
func (q *Quiz) Result() (domain.QuizResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.completed {
		return domain.QuizResult{}, fmt.Errorf("quiz.Result: %w", ErrNotCompleted)
	}
	return q.resultLocked(), nil
}

func (q *Quiz) resultLocked() domain.QuizResult {
	maxScore := len(q.questions) * domain.PointsPerQuestion
	pct := float64(q.score) / float64(maxScore) * 100
	band := Band(pct)
	return domain.QuizResult{
		Score:      q.score,
		MaxScore:   maxScore,
		Percentage: pct,
		Band:       band,
		Message:    bandMessages[band],
	}
}

// Band buckets a percentage: 75 and above is positive, 50 up to 75 neutral,
// anything lower boost.
func Band(percentage float64) domain.QuizBand {
	switch {
	case percentage >= 75:
		return domain.QuizBandPositive
	case percentage >= 50:
		return domain.QuizBandNeutral
	default:
		return domain.QuizBandBoost
	}
}

// Message returns the feedback text shown for a band.
func Message(b domain.QuizBand) string { return bandMessages[b] }
