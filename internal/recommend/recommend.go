// Package recommend serves the static recommendation content for a mood.
package recommend

import (
	"slices"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

func tableFor(c domain.Category) *table {
	switch c {
	case domain.CategoryMusic:
		return &music
	case domain.CategoryMovies:
		return &movies
	case domain.CategoryActivities:
		return &activities
	}
	return nil
}

// Cards returns the ordered cards for a mood and category. Unknown moods or
// categories yield an empty slice. The result is a copy.
func Cards(mood domain.Mood, category domain.Category) []domain.Card {
	t := tableFor(category)
	if t == nil || !mood.IsValid() {
		return []domain.Card{}
	}

	src := t[mood]
	out := make([]domain.Card, len(src))
	for i, c := range src {
		c.Tasks = slices.Clone(c.Tasks)
		out[i] = c
	}
	return out
}

// Presenter holds the active recommendation tab of one browser tab.
type Presenter struct {
	mu     sync.Mutex
	active domain.Category
}

// NewPresenter creates a presenter showing music.
func NewPresenter() *Presenter {
	return &Presenter{active: domain.CategoryMusic}
}

// Active returns the selected category.
func (p *Presenter) Active() domain.Category {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Select switches the active category. Unknown categories are rejected.
func (p *Presenter) Select(c domain.Category) error {
	if !c.IsValid() {
		return domain.NewValidationError("category", "unknown category")
	}
	p.mu.Lock()
	p.active = c
	p.mu.Unlock()
	return nil
}

// Reset returns to the default tab.
func (p *Presenter) Reset() {
	p.mu.Lock()
	p.active = domain.CategoryMusic
	p.mu.Unlock()
}

// View returns the cards of the active tab for mood.
func (p *Presenter) View(mood domain.Mood) (domain.Category, []domain.Card) {
	active := p.Active()
	return active, Cards(mood, active)
}
