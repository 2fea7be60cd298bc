package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"trivia/internal/domain"
)

// Game runs a full quiz: load, shuffle, ask every question, score.
type Game struct {
	questions   QuestionRepository
	in          LineReader
	ui          Presenter
	maxAttempts int
	shuffle     bool
	rnd         *rand.Rand
	logger      *zap.Logger
}

// GameOption customizes a Game.
type GameOption func(*Game)

// WithRand sets the source used to shuffle questions.
func WithRand(rnd *rand.Rand) GameOption {
	return func(g *Game) { g.rnd = rnd }
}

// WithoutShuffle keeps questions in bank order.
func WithoutShuffle() GameOption {
	return func(g *Game) { g.shuffle = false }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) GameOption {
	return func(g *Game) { g.logger = logger }
}

func NewGame(questions QuestionRepository, in LineReader, ui Presenter, maxAttempts int, opts ...GameOption) *Game {
	g := &Game{
		questions:   questions,
		in:          in,
		ui:          ui,
		maxAttempts: maxAttempts,
		shuffle:     true,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Play runs the game for bankID. When the player quits the returned error
// wraps domain.ErrAborted and no score is rendered.
func (g *Game) Play(ctx context.Context, bankID string) (domain.ScoreResult, error) {
	bank, err := g.questions.GetBank(ctx, bankID)
	if err != nil {
		return domain.ScoreResult{}, fmt.Errorf("load questions: %w", err)
	}
	if len(bank.Questions) == 0 {
		return domain.ScoreResult{}, domain.ErrEmptyBank
	}

	questions := g.order(bank.Questions)
	g.logger.Debug("game started",
		zap.String("bank", bankID),
		zap.Int("questions", len(questions)),
		zap.Int("max_attempts", g.maxAttempts),
	)
	g.greet(len(questions))

	outcomes := make([]domain.Outcome, 0, len(questions))
	for i, question := range questions {
		outcome, err := RunSession(ctx, question, i+1, g.maxAttempts, g.in, g.ui)
		if err != nil {
			g.logger.Debug("game stopped", zap.Int("question", i+1), zap.Error(err))
			return domain.ScoreResult{}, err
		}
		g.logger.Debug("question resolved",
			zap.String("id", question.ID),
			zap.Int("outcome", int(outcome)),
		)
		outcomes = append(outcomes, outcome)
	}

	result := ComputeScore(outcomes)
	g.logger.Debug("game finished",
		zap.Float64("score", result.Score),
		zap.String("band", string(result.Band)),
	)
	g.endGame(result)
	return result, nil
}

func (g *Game) order(questions []domain.Question) []domain.Question {
	ordered := make([]domain.Question, len(questions))
	copy(ordered, questions)
	if g.shuffle {
		g.rnd.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	}
	return ordered
}

func (g *Game) greet(count int) {
	if clearer, ok := g.ui.(ScreenClearer); ok {
		_ = clearer.Clear()
	}
	_ = g.ui.Display(Message{Kind: KindTitle, Text: "Welcome to the trivia game!"})
	_ = g.ui.Display(Message{Kind: KindPlain, Text: fmt.Sprintf(`
You will be asked %d questions.
For each question you get up to %d attempts to give the right answer.
One clue can be given for each question (which is considered as an attempt).
Goal is to give the right answer, for all questions, with the fewest attempts.
`, count, g.maxAttempts)})
	_ = g.ui.PlayCue(CueOpening, false)
}

func (g *Game) endGame(result domain.ScoreResult) {
	_ = g.ui.Display(Message{Kind: KindTitle, Label: "\n", Text: " -= Game Over =- "})
	_ = g.ui.Display(Message{Kind: KindPlain, Text: fmt.Sprintf("You answered %d out of %d questions.", result.Answered, result.Total)})
	_ = g.ui.Display(Message{
		Kind: ScoreKind(result.Band),
		Text: fmt.Sprintf("Your score is: %.1f (max is %.0f)", result.Display(), domain.MaxScore),
	})
	if result.Band == domain.BandLow {
		_ = g.ui.PlayCue(CueNotification, true)
		return
	}
	_ = g.ui.PlayCue(CueHappyEnd, true)
}
