package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diegoclair/prep-rotation/internal/config"
	"github.com/diegoclair/prep-rotation/internal/database"
	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"github.com/diegoclair/prep-rotation/internal/domain/service"
	"github.com/diegoclair/prep-rotation/internal/logger"
	"github.com/diegoclair/prep-rotation/internal/source"
	"github.com/diegoclair/prep-rotation/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "prep",
	Short: "Two-week prep rotation lookup",
	Long: `prep suggests which slot of the alternating two-week rotation applies
today, reads typed overrides such as "2 fri", and serves the item list
filtered by location.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		cfg = config.Load()

		var err error
		log, err = logger.New(cfg.LogLevel, cfg.AppEnv)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, suggestCmd, parseCmd, optionsCmd, syncCmd, locationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds everything a command needs; close releases the database
type app struct {
	db       *database.DB
	services *service.Instance
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

func serviceOptions() (service.Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return service.Options{}, err
	}

	rotation, err := schedule.ParseRotation(cfg.RotationAnchor)
	if err != nil {
		return service.Options{}, err
	}

	return service.Options{
		Rotation:         rotation,
		Location:         loc,
		Now:              time.Now,
		SlackChannelID:   cfg.SlackChannelID,
		NotificationTime: cfg.NotificationTime,
	}, nil
}

// newApp opens and migrates the item store and wires the services
func newApp() (*app, error) {
	opts, err := serviceOptions()
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	log.Debug("running migrations", zap.String("path", cfg.DatabasePath))
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, err
	}

	var slackClient contract.SlackClient
	if cfg.SlackBotToken != "" {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	src := source.New(cfg.ItemsBaseURL, cfg.ItemsPath, nil)

	return &app{
		db:       db,
		services: service.NewInstance(database.NewInstance(db), src, slackClient, opts, log),
	}, nil
}
