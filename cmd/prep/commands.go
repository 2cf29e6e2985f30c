package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"github.com/diegoclair/prep-rotation/internal/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API, the Slack command and the daily reminder",
	RunE:  runServe,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print today's rotation slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serviceOptions()
		if err != nil {
			return err
		}

		suggestion := opts.Rotation.Suggest(opts.Now().In(opts.Location))
		handlers.RenderMessage(cmd.OutOrStdout(), schedule.OptionLabel(suggestion.Week, suggestion.DayLabel)+"\n")
		return nil
	},
}

var (
	parseWeek int
	parseDay  string
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Resolve a typed week/day such as \"2 fri\"",
	Long: `Reads week and weekday tokens in any order. Missing parts are taken from
--week/--day, which default to today's slot. Unreadable text keeps the current slot.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serviceOptions()
		if err != nil {
			return err
		}

		suggestion := opts.Rotation.Suggest(opts.Now().In(opts.Location))
		fallback := entity.Selection{Week: suggestion.Week, Day: suggestion.DayShort}
		if cmd.Flags().Changed("week") {
			fallback.Week = parseWeek
		}
		if cmd.Flags().Changed("day") {
			fallback.Day = parseDay
		}

		selection := schedule.ParseUserInput(strings.Join(args, " "), fallback.Week, fallback.Day)
		if selection == nil {
			return fmt.Errorf("could not read a week or weekday in %q", strings.Join(args, " "))
		}

		handlers.RenderMessage(cmd.OutOrStdout(), schedule.OptionLabel(selection.Week, domain.LabelForCode(selection.Day))+"\n")
		return nil
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options [query]",
	Short: "List rotation slots, optionally filtered by weekday prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := schedule.WeekdayOptions()
		if len(args) == 1 {
			options = schedule.FilterWeekdayOptions(options, args[0])
		}

		for _, opt := range options {
			handlers.RenderMessage(cmd.OutOrStdout(), opt.Label+"\n")
		}
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the item list and store it locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		count, err := a.services.Prep.SyncItems(cmd.Context())
		if err != nil {
			return err
		}

		handlers.RenderMessage(cmd.OutOrStdout(), fmt.Sprintf("synced %d items\n", count))
		return nil
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the location tags of the stored items",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		locations, err := a.services.Prep.Locations()
		if err != nil {
			return err
		}

		for _, loc := range locations {
			handlers.RenderMessage(cmd.OutOrStdout(), loc+"\n")
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().IntVar(&parseWeek, "week", 0, "current week (1 or 2), defaults to today's")
	parseCmd.Flags().StringVar(&parseDay, "day", "", "current weekday code (mon..fri), defaults to today's")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.services.Notifier.Start(); err != nil {
		return fmt.Errorf("failed to start notifier: %w", err)
	}
	defer a.services.Notifier.Stop()

	if _, err := a.services.Prep.SyncItems(ctx); err != nil {
		log.Warn("initial item sync failed, serving stored items", zap.Error(err))
	}

	mux := http.NewServeMux()
	handlers.NewAPIHandler(a.services.Prep, log).Register(mux)

	if cfg.SlackEnabled() {
		slackHandler := handlers.NewSlackHandler(a.services.Prep, cfg.SlackSigningSecret, log)
		mux.HandleFunc("POST /slack/commands", slackHandler.HandleSlashCommand)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
