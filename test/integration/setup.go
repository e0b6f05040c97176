package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/ballotbox/api/internal/adapters/handler/http"
	repo "github.com/ballotbox/api/internal/adapters/repository/postgres"
	"github.com/ballotbox/api/internal/core/domain"
	"github.com/ballotbox/api/internal/core/services"
)

var testJWTSecret = []byte("integration-test-secret")

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureSchema(db))

	voterRepo := repo.NewVoterRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	tallyRepo := repo.NewTallyRepository(db)
	adminRepo := repo.NewAdminRepository(db)

	authService := services.NewAuthService(voterRepo, adminRepo, testJWTSecret)
	ballotService := services.NewBallotService(voterRepo, candidateRepo, voteRepo)
	electionService := services.NewElectionService(voterRepo, candidateRepo, voteRepo)
	tallyService := services.NewTallyService(tallyRepo)

	router := handler.NewHandler(
		handler.NewAuthHandler(authService),
		handler.NewVoteHandler(ballotService),
		handler.NewResultsHandler(electionService, tallyService),
		handler.NewAdminHandler(electionService),
		testJWTSecret,
		"",
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) createVoter(t *testing.T, id, name, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = app.DB.Exec(`INSERT INTO voters (id, name, password_hash) VALUES ($1, $2, $3)`, id, name, string(hash))
	require.NoError(t, err)
}

func (app *TestApp) createCandidate(t *testing.T, name, party string) int64 {
	t.Helper()
	var id int64
	err := app.DB.QueryRow(`INSERT INTO candidates (name, party) VALUES ($1, $2) RETURNING id`, name, party).Scan(&id)
	require.NoError(t, err)
	return id
}

func (app *TestApp) createAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	_, err = app.DB.Exec(`INSERT INTO admins (username, password_hash) VALUES ($1, $2)`, username, string(hash))
	require.NoError(t, err)
}

func signTestToken(t *testing.T, subject, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTSecret)
	require.NoError(t, err)
	return token
}

func voterToken(t *testing.T, voterID string) string {
	return signTestToken(t, voterID, domain.RoleVoter)
}

func adminToken(t *testing.T) string {
	return signTestToken(t, "admin", domain.RoleAdmin)
}
