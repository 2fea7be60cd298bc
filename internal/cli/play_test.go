package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trivia/internal/config"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runCLIWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"), stdin, args...)
}

func runCLIWithConfig(t *testing.T, configFile, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPlayDemoPerfectGame(t *testing.T) {
	out, err := runCLI(t, "paris\njupiter\ngopher\n", "play", "--demo", "--no-shuffle", "--no-sound", "--no-color")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "You answered 3 out of 3 questions.") {
		t.Fatalf("expected summary, got:\n%s", out)
	}
	if !strings.Contains(out, "Your score is: 10.0 (max is 10)") {
		t.Fatalf("expected perfect score, got:\n%s", out)
	}
}

func TestPlayFromQuestionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	payload := `{"questions":[{"question":"2 + 2?","answer":["4","four"],"hint":"even"}]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write questions: %v", err)
	}
	out, err := runCLI(t, "\nclue\nfive\nit's four\n", "--questions", path, "--no-sound", "--no-color", "--attempts", "3")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Hint: even") {
		t.Fatalf("expected hint, got:\n%s", out)
	}
	if !strings.Contains(out, "You are right! (3 attempts)") {
		t.Fatalf("expected success on third attempt, got:\n%s", out)
	}
	// 11 - 3 = 8
	if !strings.Contains(out, "Your score is: 8.0 (max is 10)") {
		t.Fatalf("expected score 8.0, got:\n%s", out)
	}
}

func TestPlayQuitHasNoScore(t *testing.T) {
	out, err := runCLI(t, "rome\nexit\n", "play", "--demo", "--no-shuffle", "--no-sound", "--no-color")
	if err != nil {
		t.Fatalf("quit should not be an error: %v", err)
	}
	if !strings.Contains(out, "Quitting game") {
		t.Fatalf("expected quit message, got:\n%s", out)
	}
	if strings.Contains(out, "Game Over") {
		t.Fatalf("expected no score on quit, got:\n%s", out)
	}
}

func TestPlayMissingQuestionsFile(t *testing.T) {
	out, err := runCLI(t, "", "play", "--questions", filepath.Join(t.TempDir(), "none.json"), "--no-sound", "--no-color")
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(out, "question bank not found") {
		t.Fatalf("expected error message, got:\n%s", out)
	}
}

func TestPlayOptionsApply(t *testing.T) {
	cfg := config.Default()
	opts := playOptions{questionsFile: "x.yaml", bankID: "b", maxAttempts: 2, noColor: true, noSound: true, noShuffle: true}
	opts.apply(&cfg)
	if cfg.Game.QuestionsFile != "x.yaml" || cfg.Game.BankID != "b" || cfg.Game.MaxAttempts != 2 {
		t.Fatalf("unexpected game config %+v", cfg.Game)
	}
	if !cfg.Game.NoColor || !cfg.Game.NoShuffle || cfg.Audio.Enabled {
		t.Fatalf("expected switches applied: %+v %+v", cfg.Game, cfg.Audio)
	}
}

func TestMigrateRequiresPostgres(t *testing.T) {
	if _, err := runCLI(t, "", "migrate"); err == nil {
		t.Fatalf("expected error without postgres url")
	}
}

func TestPlayFlagsFixInvalidConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("game:\n  max_attempts: 0\naudio:\n  command: []\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := runCLIWithConfig(t, configFile, "paris\njupiter\ngopher\n",
		"play", "--demo", "--no-shuffle", "--no-sound", "--no-color", "--attempts", "3")
	if err != nil {
		t.Fatalf("play: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Your answer (1/3): ") {
		t.Fatalf("expected attempts override, got:\n%s", out)
	}
}

func TestRootCommandsDoNotShareConfigPath(t *testing.T) {
	first := newRootCmd()
	if err := first.PersistentFlags().Set("config", "first.yaml"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	_ = newRootCmd()
	if got := first.PersistentFlags().Lookup("config").Value.String(); got != "first.yaml" {
		t.Fatalf("expected first command to keep its config path, got %q", got)
	}
}
