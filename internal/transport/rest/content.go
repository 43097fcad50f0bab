package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
	"github.com/heartmarshall/moodverse-backend/internal/quiz"
	"github.com/heartmarshall/moodverse-backend/internal/recommend"
)

// ContentHandler serves the static recommendation and quiz content.
type ContentHandler struct{}

// NewContentHandler creates a ContentHandler.
func NewContentHandler() *ContentHandler { return &ContentHandler{} }

type recommendationsResponse struct {
	Mood     domain.Mood     `json:"mood"`
	Category domain.Category `json:"category"`
	Cards    []domain.Card   `json:"cards"`
}

type quizResponse struct {
	Mood      domain.Mood       `json:"mood"`
	Questions []domain.Question `json:"questions"`
}

// Recommendations handles GET /api/recommendations/{mood}/{category}.
func (h *ContentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	mood, err := domain.ParseMood(chi.URLParam(r, "mood"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown mood")
		return
	}
	category := domain.Category(chi.URLParam(r, "category"))
	if !category.IsValid() {
		writeError(w, http.StatusNotFound, "unknown category")
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		Mood:     mood,
		Category: category,
		Cards:    recommend.Cards(mood, category),
	})
}

// Quiz handles GET /api/quiz/{mood}.
func (h *ContentHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	mood, err := domain.ParseMood(chi.URLParam(r, "mood"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown mood")
		return
	}

	qs, err := quiz.Questions(mood)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown mood")
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Mood: mood, Questions: qs})
}
