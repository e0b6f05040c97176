package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/ballotbox/api/internal/adapters/handler/http"
	repo "github.com/ballotbox/api/internal/adapters/repository/postgres"
	"github.com/ballotbox/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if err := repo.EnsureSchema(db); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := repo.Seed(seedCtx, db, repo.SeedConfig{
		AdminUsername: envOrDefault("SEED_ADMIN_USERNAME", "admin"),
		AdminPassword: envOrDefault("SEED_ADMIN_PASSWORD", "changeme"),
	}); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	voterRepo := repo.NewVoterRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	tallyRepo := repo.NewTallyRepository(db)
	adminRepo := repo.NewAdminRepository(db)

	authService := services.NewAuthService(voterRepo, adminRepo, []byte(jwtSecret))
	ballotService := services.NewBallotService(voterRepo, candidateRepo, voteRepo)
	electionService := services.NewElectionService(voterRepo, candidateRepo, voteRepo)
	tallyService := services.NewTallyService(tallyRepo)

	router := handler.NewHandler(
		handler.NewAuthHandler(authService),
		handler.NewVoteHandler(ballotService),
		handler.NewResultsHandler(electionService, tallyService),
		handler.NewAdminHandler(electionService),
		[]byte(jwtSecret),
		os.Getenv("STATIC_DIR"),
	)

	addr := "0.0.0.0:" + envOrDefault("PORT", "8080")
	server := &stdhttp.Server{Addr: addr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
