package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alibigame/alibi/internal/ai"
	"github.com/alibigame/alibi/internal/envstruct"
	"github.com/alibigame/alibi/internal/errors"
	"github.com/alibigame/alibi/internal/evidence"
	"github.com/alibigame/alibi/internal/logging"
	"github.com/alibigame/alibi/internal/pprofserver"
	"github.com/alibigame/alibi/internal/random"
	"github.com/alibigame/alibi/internal/scenario"
	"github.com/alibigame/alibi/internal/session"
	"github.com/joho/godotenv"
)

type config struct {
	Addr            string        `env:"ALIBI_ADDR" envDefault:"0.0.0.0:3000"`
	Environment     string        `env:"ALIBI_ENV" envDefault:"development"`
	CORSOrigins     string        `env:"ALIBI_CORS_ORIGINS" envDefault:""`
	RateLimitWindow time.Duration `env:"ALIBI_RATE_LIMIT_WINDOW" envDefault:"15m"`
	RateLimitMax    int           `env:"ALIBI_RATE_LIMIT_MAX" envDefault:"100"`
	SessionTTL      time.Duration `env:"ALIBI_SESSION_TTL" envDefault:"30m"`
	SweepInterval   time.Duration `env:"ALIBI_SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	PprofAddr       string        `env:"ALIBI_PPROF_ADDR" envDefault:""`
	OpenAIBaseURL   string        `env:"ALIBI_OPENAI_BASE_URL" envDefault:""`
	OpenAIModel     string        `env:"ALIBI_OPENAI_MODEL" envDefault:"gpt-4o"`
	// OpenAIAPIKey has no default on purpose: the process refuses to start
	// without the upstream credential.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// corsOriginList resolves the configured origins. An empty setting falls back
// to the environment tier default: locked to the game origins in production,
// permissive everywhere else.
func (c config) corsOriginList() []string {
	if c.CORSOrigins != "" {
		origins := strings.Split(c.CORSOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	if c.Environment == "production" {
		return []string{"https://www.roblox.com", "https://web.roblox.com"}
	}
	return []string{"*"}
}

type application struct {
	logger   *slog.Logger
	config   config
	store    *session.Store
	aiClient *ai.Client
	limiter  *rateLimiter
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PprofAddr != "" {
		pprofserver.Launch(cfg.PprofAddr, logger)
	}

	r := random.New()
	store := session.NewStore(logger, scenario.NewGenerator(r), evidence.NewGenerator(r), cfg.SessionTTL)
	store.StartSweeper(ctx, cfg.SweepInterval)

	limiter := newRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)
	limiter.startCleanup(ctx)

	app := application{
		logger:   logger,
		config:   cfg,
		store:    store,
		aiClient: ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel),
		limiter:  limiter,
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Duration("sessionTTL", cfg.SessionTTL),
		slog.Int("rateLimitMax", cfg.RateLimitMax))

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()

	// Best effort: a missing .env file is fine in deployments that configure
	// through real environment variables.
	_ = godotenv.Load()

	level := slog.LevelDebug
	if os.Getenv("ALIBI_ENV") == "production" {
		level = slog.LevelInfo
	}
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server exited with error", errors.SlogError(err))
		os.Exit(1)
	}
}
