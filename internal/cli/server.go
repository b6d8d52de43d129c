package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"wellnest/internal/app"
	"wellnest/internal/config"
	"wellnest/internal/infra/memory"
	pgstore "wellnest/internal/infra/postgres"
	redisstore "wellnest/internal/infra/redis"
	"wellnest/internal/llm"
	"wellnest/internal/quizgen"
	"wellnest/internal/tips"
	transport "wellnest/internal/transport/http"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the assessment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	providers, err := buildProviders(ctx, cfg)
	if err != nil {
		return err
	}

	sessionTTL := config.TTLDuration(cfg.Session.TTL, 30*time.Minute)

	var sessions app.SessionStore = memory.NewQuestionStore(sessionTTL)
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessions = redisstore.NewQuestionStore(client, sessionTTL)
	}

	var results app.ResultStore = memory.NewResultStore()
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		results = pgstore.NewResultStore(pool)
	}

	generator := quizgen.NewGenerator(providers...)
	service := app.NewAssessmentService(generator, sessions, results)
	tipService := tips.NewService(providers...)

	handler := transport.NewHandler(service, tipService)
	chatHandler := transport.NewChatHandler(providers...)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /ws/chat", chatHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // provider round trips are slow
	}

	go func() {
		log.Printf("starting wellnest service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildProviders assembles the ordered fallback chain: OpenAI primary,
// Gemini secondary. At least one must be configured.
func buildProviders(ctx context.Context, cfg config.Config) ([]llm.Provider, error) {
	var providers []llm.Provider

	if cfg.Providers.OpenAI.APIKey != "" {
		p, err := llm.NewOpenAIProvider(cfg.Providers.OpenAI)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	if cfg.Providers.Gemini.APIKey != "" {
		p, err := llm.NewGeminiProvider(ctx, cfg.Providers.Gemini)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no generation provider configured (set OPENAI_API_KEY or GEMINI_API_KEY)")
	}
	return providers, nil
}
