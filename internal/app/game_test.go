package app_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"trivia/internal/app"
	"trivia/internal/domain"
	"trivia/internal/infra/memory"
)

func TestGamePlayScoresInOrder(t *testing.T) {
	ui := &recordingPresenter{}
	reader := newScriptedReader(
		"4",                         // q1 on first try
		"saturn", "hint", "jupiter", // q2 on third try
		"x", "y", "z", "w", "v", // q3 exhausted
	)
	game := app.NewGame(newTestRepository(), reader, ui, 5, app.WithoutShuffle())

	result, err := game.Play(context.Background(), "default")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	// unanswered=1, total=4, average=(4+10)/3, score=10-average.
	if result.Answered != 2 || result.Unanswered != 1 || result.TotalAttempts != 4 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Band != domain.BandLow {
		t.Fatalf("expected low band, got %s", result.Band)
	}
	if ui.clears != 1 {
		t.Fatalf("expected screen cleared once, got %d", ui.clears)
	}
	if !ui.hasText("Your score is: 5.3 (max is 10)") {
		t.Fatalf("expected score line, got %+v", ui.messages)
	}
	if ui.count(app.KindScoreLow) != 1 {
		t.Fatalf("expected low score styling")
	}
	cues := ui.cueNames()
	if cues[0] != app.CueOpening || cues[len(cues)-1] != app.CueNotification {
		t.Fatalf("unexpected cues %v", cues)
	}
}

func TestGamePlayPerfectRun(t *testing.T) {
	ui := &recordingPresenter{}
	reader := newScriptedReader("four", "jupiter", "nile")
	game := app.NewGame(newTestRepository(), reader, ui, 5, app.WithoutShuffle())

	result, err := game.Play(context.Background(), "default")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if result.Score != 10 || result.Band != domain.BandHigh {
		t.Fatalf("expected perfect score, got %+v", result)
	}
	if ui.count(app.KindScoreHigh) != 1 {
		t.Fatalf("expected high score styling")
	}
	if last := ui.cues[len(ui.cues)-1]; last.name != app.CueHappyEnd || !last.blocking {
		t.Fatalf("expected blocking happy-end cue, got %+v", last)
	}
}

func TestGamePlayAbortHasNoScore(t *testing.T) {
	ui := &recordingPresenter{}
	reader := newScriptedReader("4", "exit")
	game := app.NewGame(newTestRepository(), reader, ui, 5, app.WithoutShuffle())

	result, err := game.Play(context.Background(), "default")
	if !errors.Is(err, domain.ErrAborted) {
		t.Fatalf("expected abort, got %v", err)
	}
	if result != (domain.ScoreResult{}) {
		t.Fatalf("expected zero result, got %+v", result)
	}
	if ui.hasText(" -= Game Over =- ") {
		t.Fatalf("game over screen must not render on abort")
	}
}

func TestGamePlayShufflesWithInjectedRand(t *testing.T) {
	seed := int64(7)
	expected := shuffledPrompts(seed)

	ui := &recordingPresenter{}
	game := app.NewGame(newTestRepository(), newScriptedReader(), ui, 5, app.WithRand(rand.New(rand.NewSource(seed))))
	_, _ = game.Play(context.Background(), "default")

	for _, msg := range ui.messages {
		if msg.Kind == app.KindQuestion {
			if msg.Text != expected[0] {
				t.Fatalf("expected first question %q, got %q", expected[0], msg.Text)
			}
			return
		}
	}
	t.Fatalf("no question displayed")
}

func TestGamePlayErrors(t *testing.T) {
	repo := memory.NewQuestionRepository(memory.NewStaticQuestionLoader(map[string]domain.Bank{
		"empty": {ID: "empty"},
	}), time.Minute)
	game := app.NewGame(repo, newScriptedReader(), &recordingPresenter{}, 5)

	if _, err := game.Play(context.Background(), "missing"); !errors.Is(err, domain.ErrBankNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := game.Play(context.Background(), "empty"); !errors.Is(err, domain.ErrEmptyBank) {
		t.Fatalf("expected empty bank, got %v", err)
	}
}

func testBank() domain.Bank {
	return domain.Bank{
		ID: "default",
		Questions: []domain.Question{
			{ID: "q1", Prompt: "What is 2 + 2?", Answers: []string{"4", "four"}, Hint: "Less than five"},
			{ID: "q2", Prompt: "Largest planet?", Answers: []string{"jupiter"}, Hint: "Named after a god"},
			{ID: "q3", Prompt: "Longest river?", Answers: []string{"nile"}, Hint: "Egypt"},
		},
	}
}

func newTestRepository() *memory.QuestionRepository {
	return memory.NewQuestionRepository(memory.NewStaticQuestionLoader(map[string]domain.Bank{
		"default": testBank(),
	}), 5*time.Minute)
}

func shuffledPrompts(seed int64) []string {
	questions := testBank().Questions
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	prompts := make([]string, 0, len(questions))
	for _, q := range questions {
		prompts = append(prompts, q.Prompt)
	}
	return prompts
}
