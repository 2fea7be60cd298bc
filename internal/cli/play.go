package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia/internal/app"
	"trivia/internal/audio"
	"trivia/internal/config"
	"trivia/internal/domain"
	"trivia/internal/infra/file"
	"trivia/internal/infra/memory"
	pgstore "trivia/internal/infra/postgres"
	rediscache "trivia/internal/infra/redis"
	"trivia/internal/logger"
	"trivia/internal/terminal"
)

const demoBankID = "demo"

type playOptions struct {
	questionsFile string
	bankID        string
	maxAttempts   int
	noColor       bool
	noSound       bool
	noShuffle     bool
	demo          bool
}

func (o *playOptions) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.questionsFile, "questions", "", "questions file (JSON or YAML); overrides game.questions_file")
	flags.StringVar(&o.bankID, "bank", "", "question bank id when loading from Postgres")
	flags.IntVar(&o.maxAttempts, "attempts", 0, "attempts per question; overrides game.max_attempts")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&o.noSound, "no-sound", false, "disable audio cues")
	flags.BoolVar(&o.noShuffle, "no-shuffle", false, "ask questions in file order")
	flags.BoolVar(&o.demo, "demo", false, "play the built-in demo questions")
}

// apply merges command-line overrides into cfg.
func (o *playOptions) apply(cfg *config.Config) {
	if o.questionsFile != "" {
		cfg.Game.QuestionsFile = o.questionsFile
	}
	if o.bankID != "" {
		cfg.Game.BankID = o.bankID
	}
	if o.maxAttempts != 0 {
		cfg.Game.MaxAttempts = o.maxAttempts
	}
	if o.noColor {
		cfg.Game.NoColor = true
	}
	if o.noSound {
		cfg.Audio.Enabled = false
	}
	if o.noShuffle {
		cfg.Game.NoShuffle = true
	}
}

// NewPlayCmd builds the CLI subcommand that runs a game.
func NewPlayCmd(configPath *string) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round of trivia",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, *configPath, opts)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func runPlay(cmd *cobra.Command, configPath string, opts *playOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	player := audio.NewPlayer(cfg.Audio.Dir, cfg.Audio.Command, cfg.Audio.Enabled, log)
	console := terminal.NewConsole(cmd.OutOrStdout(), player, cfg.Game.NoColor)

	repo, bankID, cleanup, err := questionRepository(ctx, cfg, opts.demo, log)
	if err != nil {
		console.Error(err)
		return err
	}
	defer cleanup()

	gameOpts := []app.GameOption{app.WithLogger(log)}
	if cfg.Game.NoShuffle {
		gameOpts = append(gameOpts, app.WithoutShuffle())
	}
	game := app.NewGame(repo, terminal.NewLineReader(cmd.InOrStdin()), console, cfg.Game.MaxAttempts, gameOpts...)

	if _, err := game.Play(ctx, bankID); err != nil {
		if errors.Is(err, domain.ErrAborted) {
			log.Info("player quit", zap.Error(err))
			return nil
		}
		console.Error(err)
		return err
	}
	return nil
}

// questionRepository picks the question source: the demo bank, Postgres when
// configured, otherwise the questions file. Redis caches it when configured.
func questionRepository(ctx context.Context, cfg config.Config, demo bool, log *zap.Logger) (app.QuestionRepository, string, func(), error) {
	cleanup := func() {}

	var loader memory.QuestionLoader
	bankID := cfg.Game.BankID
	switch {
	case demo:
		loader = memory.NewStaticQuestionLoader(demoBanks())
		bankID = demoBankID
	case cfg.Postgres.URL != "":
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, "", cleanup, err
		}
		cleanup = pool.Close
		loader = pgstore.NewQuestionStore(pool)
		if bankID == "" {
			bankID = "default"
		}
	default:
		loader = file.NewQuestionLoader(cfg.Game.QuestionsFile)
		if bankID == "" {
			bankID = cfg.Game.QuestionsFile
		}
	}

	ttl := config.TTLDuration(cfg.Cache.TTL, 10*time.Minute)
	if cfg.Redis.Addr == "" || demo {
		return memory.NewQuestionRepository(loader, ttl), bankID, cleanup, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	closePool := cleanup
	cleanup = func() {
		_ = client.Close()
		closePool()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, ttl)
	return rediscache.NewQuestionRepository(client, loader, redisTTL, log), bankID, cleanup, nil
}

// demoBanks provides a small built-in bank for trying the game without a questions file.
func demoBanks() map[string]domain.Bank {
	return map[string]domain.Bank{
		demoBankID: {
			ID: demoBankID,
			Questions: []domain.Question{
				{
					ID:      "capital-france",
					Prompt:  "What is the capital of France?",
					Answers: []string{"paris"},
					Hint:    "It is called the City of Light.",
				},
				{
					ID:      "largest-planet",
					Prompt:  "What is the largest planet in the solar system?",
					Answers: []string{"jupiter"},
					Hint:    "It is named after the king of the Roman gods.",
				},
				{
					ID:      "go-mascot",
					Prompt:  "What animal is the Go mascot?",
					Answers: []string{"gopher"},
					Hint:    "A burrowing rodent.",
				},
			},
		},
	}
}
