package domain

// PointsPerQuestion is the value of the first option of every question.
// Option i is worth PointsPerQuestion - i.
const PointsPerQuestion = 3

// Question is one multiple-choice quiz question.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// QuizState is the progress of a single quiz run.
type QuizState struct {
	Mood          Mood
	QuestionIndex int
	Total         int
	Score         int
	Completed     bool
}

// QuizBand is the qualitative bucket of a finished quiz.
type QuizBand string

const (
	QuizBandPositive QuizBand = "positive"
	QuizBandNeutral  QuizBand = "neutral"
	QuizBandBoost    QuizBand = "boost"
)

func (b QuizBand) String() string { return string(b) }

// QuizResult is the outcome of a completed quiz.
type QuizResult struct {
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Band       QuizBand `json:"band"`
	Message    string   `json:"message"`
}
