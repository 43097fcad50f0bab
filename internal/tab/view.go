package tab

import (
	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/session"
)

// Screen names the page a tab is showing.
type Screen string

const (
	ScreenLoading         Screen = "loading"
	ScreenAuth            Screen = "auth"
	ScreenAnalyzer        Screen = "analyzer"
	ScreenRecommendations Screen = "recommendations"
	ScreenQuiz            Screen = "quiz"
)

// View is the full render state pushed to the browser.
type View struct {
	Screen          Screen               `json:"screen"`
	Session         session.Session      `json:"session"`
	Capture         *CaptureView         `json:"capture,omitempty"`
	Recommendations *RecommendationsView `json:"recommendations,omitempty"`
	Quiz            *QuizView            `json:"quiz,omitempty"`
}

// CaptureView is the analyzer page.
type CaptureView struct {
	Phase         domain.CapturePhase `json:"phase"`
	Analyzing     bool                `json:"analyzing"`
	DetectorReady bool                `json:"detector_ready"`
	Error         string              `json:"error,omitempty"`
}

// RecommendationsView is the recommendations page for the assigned mood.
type RecommendationsView struct {
	Mood    domain.Mood     `json:"mood"`
	Active  domain.Category `json:"active"`
	Cards   []domain.Card   `json:"cards"`
	CanQuiz bool            `json:"can_quiz"`
}

// QuizView is either the current question or, once completed, the result.
type QuizView struct {
	Mood          domain.Mood        `json:"mood"`
	QuestionIndex int                `json:"question_index"`
	Total         int                `json:"total"`
	Question      *domain.Question   `json:"question,omitempty"`
	Result        *domain.QuizResult `json:"result,omitempty"`
}

// CameraConstraints is the getUserMedia video request sent on connect.
type CameraConstraints struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FacingMode string `json:"facing_mode"`
}
