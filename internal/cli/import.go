package cli

import (
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trivia/internal/config"
	"trivia/internal/infra/file"
	pgstore "trivia/internal/infra/postgres"
	rediscache "trivia/internal/infra/redis"
	"trivia/internal/logger"
)

// NewImportCmd loads a questions file into Postgres so games can use --bank.
func NewImportCmd(configPath *string) *cobra.Command {
	var bankID string
	cmd := &cobra.Command{
		Use:   "import <questions-file>",
		Short: "Validate a questions file and store it in Postgres",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			log, err := logger.New(cfg.Log.Env)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			bank, err := file.LoadBank(args[0])
			if err != nil {
				return err
			}
			if bankID == "" {
				bankID = "default"
			}
			bank.ID = bankID

			if err := runMigrations(ctx, cfg, log); err != nil {
				return err
			}
			pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pgstore.NewQuestionStore(pool).SaveBank(ctx, bank); err != nil {
				return err
			}

			if cfg.Redis.Addr != "" {
				client := redis.NewClient(&redis.Options{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				})
				defer client.Close()
				cache := rediscache.NewQuestionRepository(client, nil, 0, log)
				if err := cache.Invalidate(ctx, bankID); err != nil {
					log.Warn("invalidate cached bank", zap.String("bank", bankID), zap.Error(err))
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions into bank %q\n", len(bank.Questions), bankID)
			return nil
		},
	}
	cmd.Flags().StringVar(&bankID, "bank", "default", "bank id to store the questions under")
	return cmd
}
