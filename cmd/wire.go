package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bnema/humanos-cli/internal/adapters/api"
	"github.com/bnema/humanos-cli/internal/adapters/notify/chain"
	"github.com/bnema/humanos-cli/internal/adapters/notify/desktop"
	"github.com/bnema/humanos-cli/internal/adapters/notify/terminal"
	"github.com/bnema/humanos-cli/internal/adapters/prompt"
	tomlrepo "github.com/bnema/humanos-cli/internal/adapters/repo/toml"
	"github.com/bnema/humanos-cli/internal/application"
	"github.com/bnema/humanos-cli/internal/domain"
	"github.com/bnema/humanos-cli/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envAPIURL       = "HOS_API_URL"
	envPollInterval = "HOS_POLL_INTERVAL"
	envHTTPTimeout  = "HOS_HTTP_TIMEOUT"
	envLogLevel     = "HOS_LOG_LEVEL"
	envNotify       = "HOS_NOTIFY"
)

const (
	notifyAuto     = "auto"
	notifyDesktop  = "desktop"
	notifyTerminal = "terminal"
	notifyOff      = "off"
)

type app struct {
	client     *api.Client
	prefs      *tomlrepo.PreferencesRepository
	store      *application.Store
	clock      *application.SessionClock
	poller     *application.StatusPoller
	reconciler *application.Reconciler
	capture    *application.CaptureService
	trigger    *application.NotificationTrigger
	toasts     *application.Toasts
	logger     *slog.Logger
	logLevel   *slog.LevelVar

	pollInterval time.Duration
	now          func() time.Time
}

func wireApp(stderr io.Writer) (*app, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	if stderr == nil {
		stderr = os.Stderr
	}

	logLevel := new(slog.LevelVar)
	level, err := parseLogLevel(envOrDefault(envLogLevel, "warn"))
	if err != nil {
		return nil, err
	}
	logLevel.Set(level)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	prefsRepo, err := tomlrepo.NewPreferencesRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire preferences repository: %w", err)
	}

	prefs, err := prefsRepo.Load(context.Background())
	if err != nil {
		logger.Warn("load preferences, using defaults", slog.String("path", prefsRepo.Path()), slog.Any("error", err))
		prefs = domain.Preferences{}
	}

	baseURL := api.DefaultBaseURL
	if prefs.APIURL != "" {
		baseURL = prefs.APIURL
	}
	baseURL = envOrDefault(envAPIURL, baseURL)

	pollInterval := application.DefaultPollInterval
	if prefs.PollInterval > 0 {
		pollInterval = prefs.PollInterval
	}
	pollInterval, err = durationFromEnv(envPollInterval, pollInterval)
	if err != nil {
		return nil, err
	}

	requestTimeout, err := durationFromEnv(envHTTPTimeout, api.DefaultRequestTimeout)
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(baseURL, &http.Client{}, requestTimeout)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	notifier, err := newNotifier(envOrDefault(envNotify, notifyAuto), stderr)
	if err != nil {
		return nil, err
	}

	systemClock := ports.SystemClock{}
	store := application.NewStore(logger)
	sessionClock := application.NewSessionClock(systemClock, logger)
	poller := application.NewStatusPoller(client, store, logger)

	// With alerts off there is nothing to ask permission for.
	var prompter ports.PermissionPrompter
	if notifier != nil {
		prompter = prompt.NewPrompter(os.Stdin, stderr)
	}
	trigger := application.NewNotificationTrigger(prefsRepo, prompter, notifier, logger)

	return &app{
		client:       client,
		prefs:        prefsRepo,
		store:        store,
		clock:        sessionClock,
		poller:       poller,
		reconciler:   application.NewReconciler(client, client, client, store, sessionClock, logger),
		capture:      application.NewCaptureService(client, store, poller, systemClock, logger),
		trigger:      trigger,
		toasts:       application.NewToasts(store, systemClock, application.DefaultToastTTL),
		logger:       logger,
		logLevel:     logLevel,
		pollInterval: pollInterval,
		now:          time.Now,
	}, nil
}

// close stops background work the app owns and waits for pending alerts.
func (a *app) close() {
	a.poller.Stop()
	a.toasts.Close()
	a.trigger.Wait()
}

func newNotifier(mode string, stderr io.Writer) (ports.Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case notifyAuto:
		return chain.NewDesktopFirstWithTerminalFallback(stderr), nil
	case notifyDesktop:
		return desktop.NewNotifier(), nil
	case notifyTerminal:
		return terminal.NewNotifier(stderr), nil
	case notifyOff:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s: unknown notifier %q (want auto, desktop, terminal or off)", envNotify, mode)
	}
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("%s: %w", envLogLevel, err)
	}
	return level, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", key, raw)
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
