package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"trip-bot-service/internal/adapters/holiday"
	"trip-bot-service/internal/adapters/repositories"
	"trip-bot-service/internal/adapters/sl"
	"trip-bot-service/internal/adapters/slack"
	"trip-bot-service/internal/api"
	"trip-bot-service/internal/config"
	"trip-bot-service/internal/platform/db"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/ports"
	"trip-bot-service/internal/services"
	_ "time/tzdata"
)

// main is the application composition root.
// It wires concrete adapters (SL, Slack, holiday calendar, state store)
// behind ports and runs the HTTP server and the reminder scheduler.
func main() {
	obs.InitLogging()
	config.LoadDotenv()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	conn, store, err := openStore(env)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := repositories.InitSchema(context.Background(), conn); err != nil {
		log.Fatal(err)
	}

	slClient, err := sl.NewClient(sl.Config{
		BaseURL:           cfg.SL.BaseURL,
		TripAPIKey:        env.TripAPIKey,
		StationAPIKey:     env.StationAPIKey,
		RequestsPerSecond: cfg.SL.RequestsPerSecond,
		Timeout:           cfg.SLTimeout(),
	})
	if err != nil {
		log.Fatal(err)
	}

	calendar := holiday.NewClient(cfg.Holiday.BaseURL, 0)
	deliverer := slack.NewResponseURLDeliverer(0)
	templates := config.NewTemplates(cfg.Messages, nil)
	// Trip lookups get their own workers so chat replies never queue ahead of them.
	tripQueue := services.NewTaskQueue(services.DefaultTaskConcurrency)
	chatQueue := services.NewTaskQueue(services.DefaultTaskConcurrency)

	// The Web API token is only needed for mentions and the reminder.
	var poster ports.ChatPoster = disabledPoster{}
	if env.SlackToken != "" {
		poster, err = slack.NewClient(env.SlackToken, cfg.Slack.APIBaseURL, 0)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("SLACK_TOKEN not set: mentions and reminders cannot post")
	}

	formatter := services.NewItineraryFormatter(loc, time.Now)
	if cfg.Trip.MaxItineraries > 0 {
		formatter.MaxItineraries = cfg.Trip.MaxItineraries
	}

	router := api.NewRouter(api.Deps{
		Trips: &services.TripWorkflow{
			Searcher:  slClient,
			Planner:   slClient,
			Deliverer: deliverer,
			Runner:    tripQueue,
			Formatter: formatter,
		},
		TimeReport: &services.TimeReporter{
			Calendar:  calendar,
			Deliverer: deliverer,
			Runner:    chatQueue,
			Location:  loc,
			Now:       time.Now,
			Pause:     services.DefaultTimeReportPause,
		},
		Mentions: &services.MentionResponder{
			Calendar:  calendar,
			Poster:    poster,
			Templates: templates,
			Location:  loc,
			Now:       time.Now,
		},
		Runner:        chatQueue,
		SigningSecret: env.SlackSigningSecret,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Reminder.Enabled {
		hour, minute, err := cfg.ReminderTime()
		if err != nil {
			log.Fatal(err)
		}
		reminder := &services.Reminder{
			Name:      services.TimeReportReminder,
			Channel:   cfg.Reminder.Channel,
			Hour:      hour,
			Minute:    minute,
			Calendar:  calendar,
			Poster:    poster,
			Store:     store,
			Templates: templates,
			Location:  loc,
			Now:       time.Now,
		}
		go func() {
			if err := reminder.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("reminder stopped: %v", err)
			}
		}()
		log.Printf("Reminder scheduled channel=%s at=%s tz=%s", cfg.Reminder.Channel, cfg.Reminder.At, loc)
	}

	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("http shutdown: %v", err)
		}
		for _, q := range []*services.TaskQueue{tripQueue, chatQueue} {
			if err := q.Wait(shutdownCtx); err != nil {
				log.Printf("background tasks still running: %v", err)
			}
		}
	}()

	log.Printf("Server listening addr=:%s", env.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	<-stopped
}

// openStore picks Postgres when DATABASE_URL is set, else a local SQLite file.
func openStore(env config.Env) (*sql.DB, ports.ReminderStore, error) {
	if env.DatabaseURL != "" {
		conn, err := db.Open(env.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewSQLReminderStore(conn), nil
	}

	conn, err := db.OpenSqlite(env.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return conn, repositories.NewSqliteReminderStore(conn), nil
}

type disabledPoster struct{}

var errNoSlackToken = errors.New("slack: SLACK_TOKEN is not configured")

func (disabledPoster) ChannelIDByName(context.Context, string) (string, error) {
	return "", errNoSlackToken
}

func (disabledPoster) PostMessage(context.Context, string, string) error {
	return fmt.Errorf("post message: %w", errNoSlackToken)
}
