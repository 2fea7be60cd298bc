package domain

// Question is a single trivia question. Answers are matched case-insensitively.
type Question struct {
	ID      string   `json:"id,omitempty" yaml:"id,omitempty"`
	Prompt  string   `json:"question" yaml:"question"`
	Answers []string `json:"answer" yaml:"answer"`
	Hint    string   `json:"hint" yaml:"hint"`
}

// Bank is an ordered collection of questions played as one game.
type Bank struct {
	ID        string     `json:"id,omitempty" yaml:"id,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Outcome is the result of one question: the attempt on which it was answered
// correctly, or Unanswered when every attempt was used up.
type Outcome int

// Unanswered marks a question whose attempts were exhausted without success.
const Unanswered Outcome = 0

// Answered reports whether the question was resolved correctly.
func (o Outcome) Answered() bool {
	return o > Unanswered
}

// Band is the qualitative category of a final score.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// ScoreResult summarizes a finished game.
type ScoreResult struct {
	Total           int
	Answered        int
	Unanswered      int
	TotalAttempts   int
	AverageAttempts float64
	// Score is unclamped; use Display for rendering.
	Score float64
	Band  Band
}

// MaxScore is the best score a game can display.
const MaxScore = 10.0

// Display returns the score clamped to [0, MaxScore].
func (r ScoreResult) Display() float64 {
	switch {
	case r.Score < 0:
		return 0
	case r.Score > MaxScore:
		return MaxScore
	default:
		return r.Score
	}
}
