package app

import (
	"fmt"
	"log/slog"

	"hrm-api/config"
	"hrm-api/internal/api/middleware"
	"hrm-api/internal/auth"
	"hrm-api/internal/daterange"
	"hrm-api/internal/ratelimit"
	"hrm-api/internal/seed"
	"hrm-api/internal/services"
	"hrm-api/internal/storage/postgres"
	"hrm-api/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	Tokens       *auth.TokenManager
	Revoker      auth.TokenRevoker
	LoginLimiter middleware.Limiter // nil when Redis is not configured

	Users           services.UserService
	Candidates      services.CandidateService
	Interviews      services.InterviewService
	Skills          services.SkillService
	Positions       services.PositionService
	InterviewRounds services.InterviewRoundService

	// SeedRepos are the stores the startup seed writes to.
	SeedRepos seed.Repositories
}

// New wires repositories and services on top of the given connections.
// redisClient may be nil.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client) (*Application, error) {
	a := &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: redisClient,
		Validator:   validation.New(),
		Tokens:      auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration),
	}

	if redisClient != nil {
		a.Revoker = auth.NewRedisTokenRevoker(redisClient)
		if cfg.RateLimit.LoginLimit > 0 {
			limiter, err := ratelimit.NewFixedWindowLimiter(redisClient, "hrm:ratelimit:login",
				cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)
			if err != nil {
				return nil, fmt.Errorf("login rate limiter: %w", err)
			}
			a.LoginLimiter = limiter
		}
	} else {
		slog.Warn("redis not configured: token revocation is process-local and login is not rate limited")
		a.Revoker = auth.NewMemoryTokenRevoker()
	}

	txRunner := postgres.NewTxRunner(pool)
	userRepo := postgres.NewUserRepo(pool)
	candidateRepo := postgres.NewCandidateRepo(pool)
	interviewRepo := postgres.NewInterviewRepo(pool)
	skillRepo := postgres.NewSkillRepo(pool)
	positionRepo := postgres.NewPositionRepo(pool)
	roundRepo := postgres.NewInterviewRoundRepo(pool)
	resolver := postgres.NewReferenceResolver(pool)

	a.Users = services.NewUserService(userRepo, a.Tokens, a.Revoker)
	a.Candidates = services.NewCandidateService(txRunner, candidateRepo, resolver)
	a.Interviews = services.NewInterviewService(txRunner, interviewRepo, candidateRepo, resolver, daterange.NewResolver(nil))
	a.Skills = services.NewSkillService(skillRepo)
	a.Positions = services.NewPositionService(positionRepo)
	a.InterviewRounds = services.NewInterviewRoundService(roundRepo)

	a.SeedRepos = seed.Repositories{
		Users:     userRepo,
		Skills:    skillRepo,
		Positions: positionRepo,
		Rounds:    roundRepo,
	}
	return a, nil
}
