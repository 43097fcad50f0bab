package domain

// Category is a recommendation tab.
type Category string

const (
	CategoryMusic      Category = "music"
	CategoryMovies     Category = "movies"
	CategoryActivities Category = "activities"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryMusic, CategoryMovies, CategoryActivities:
		return true
	}
	return false
}

// AllCategories returns the recommendation tabs in display order.
func AllCategories() []Category {
	return []Category{CategoryMusic, CategoryMovies, CategoryActivities}
}

// Card is one piece of static recommendation content. Music cards carry a
// Platform, movie cards a Genre and activity cards a list of Tasks.
type Card struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	Tasks       []string `json:"tasks,omitempty"`
}
