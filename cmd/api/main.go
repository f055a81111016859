// @title Habit quest API
// @description API for gamified habit tracker "Habitquest"
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/habitquest/internal/api"
	"github.com/limbo/habitquest/internal/repository"
	"github.com/limbo/habitquest/internal/service"
	"github.com/limbo/habitquest/pkg/cleanup"
	"github.com/limbo/habitquest/pkg/config"
	"github.com/limbo/habitquest/pkg/entity"
	jwtservice "github.com/limbo/habitquest/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "habitquest-api",
		Short:         "Habit quest backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd(), tokenCmd())
	return cmd
}

func dbConfig(cfg *config.Config) *repository.PGCfg {
	return &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
}

func jwtService(cfg *config.Config) (*jwtservice.JWTService, error) {
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return jwtservice.New(secret, cfg.GetDuration("SESSION_TTL", jwtservice.DefaultTTL)), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			defer cleanup.CleanUp()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			jwtSvc, err := jwtService(cfg)
			if err != nil {
				return err
			}
			pool, err := repository.NewPool(ctx, dbConfig(cfg))
			if err != nil {
				return err
			}
			habitsRepo := repository.NewHabitsRepoWithConn(pool)
			serv := api.New(&api.ServicesList{
				UserService:        service.NewUserService(repository.NewUsersRepoWithConn(pool)),
				CatalogService:     service.NewCatalogService(habitsRepo),
				UserHabitsService:  service.NewUserHabitsService(habitsRepo, repository.NewUserHabitsRepoWithConn(pool)),
				CompletionsService: service.NewCompletionsService(repository.NewCompletionsRepoWithConn(pool)),
				JwtService:         jwtSvc,
				LoginURL:           cfg.GetString("LOGIN_URL"),
			})
			return serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			conn, err := sql.Open("postgres", dbConfig(cfg).ConnString()+"?sslmode=disable")
			if err != nil {
				return errors.New("opening database error: " + err.Error())
			}
			defer conn.Close()
			if err = goose.SetDialect("postgres"); err != nil {
				return err
			}
			return goose.Run(command, conn, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the habit catalog from YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			defer cleanup.CleanUp()
			if file == "" {
				file = cfg.GetStringOr("HABITS_SEED_FILE", "./configs/habits.yaml")
			}
			f, err := os.Open(file)
			if err != nil {
				return errors.New("opening seed file error: " + err.Error())
			}
			defer f.Close()
			seeds, err := service.ParseSeed(f)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			pool, err := repository.NewPool(ctx, dbConfig(cfg))
			if err != nil {
				return err
			}
			n, err := service.NewCatalogService(repository.NewHabitsRepoWithConn(pool)).Import(ctx, seeds)
			if err != nil {
				return err
			}
			slog.Info("habit catalog seeded", slog.Int("habits", n), slog.String("file", file))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed file, HABITS_SEED_FILE by default")
	return cmd
}

// tokenCmd mints a session for a provider identity, for local use and scripts
func tokenCmd() *cobra.Command {
	var identity entity.Identity
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			jwtSvc, err := jwtService(config.New())
			if err != nil {
				return err
			}
			token, err := jwtSvc.GenerateToken(identity)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&identity.ProviderID, "provider-id", "", "Identity provider user id")
	cmd.Flags().StringVar(&identity.Username, "username", "", "Display name")
	cmd.Flags().StringVar(&identity.Email, "email", "", "Email")
	cmd.Flags().StringVar(&identity.AvatarURL, "avatar", "", "Avatar URL")
	cmd.MarkFlagRequired("provider-id")
	return cmd
}
