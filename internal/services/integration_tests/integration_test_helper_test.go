package integration_tests

import (
	"context"
	"os"
	"testing"
	"time"

	"hrm-api/internal/database"
	"hrm-api/internal/daterange"
	"hrm-api/internal/services"
	"hrm-api/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// testServices is the service layer wired against a real database.
type testServices struct {
	pool       *pgxpool.Pool
	candidates services.CandidateService
	interviews services.InterviewService
	skills     services.SkillService
}

// setupServices connects to TEST_DATABASE_URL, applies migrations and empties
// every table. The test is skipped when the variable is not set.
func setupServices(t *testing.T) *testServices {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))
	require.NoError(t, database.Migrate(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE reviews, interviews, candidate_skills, candidate_positions,
		candidates, skills, positions, interview_rounds, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Failed to clean test database")

	tx := postgres.NewTxRunner(pool)
	candidateRepo := postgres.NewCandidateRepo(pool)
	resolver := postgres.NewReferenceResolver(pool)
	clock := func() time.Time { return time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC) }

	return &testServices{
		pool:       pool,
		candidates: services.NewCandidateService(tx, candidateRepo, resolver),
		interviews: services.NewInterviewService(tx, postgres.NewInterviewRepo(pool), candidateRepo, resolver, daterange.NewResolver(clock)),
		skills:     services.NewSkillService(postgres.NewSkillRepo(pool)),
	}
}

func ptr[T any](v T) *T { return &v }
