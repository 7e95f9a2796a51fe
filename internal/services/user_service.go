package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"
)

// LoginResult is a successful login.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type userService struct {
	repo    storage.UserRepository
	tokens  *auth.TokenManager
	revoker auth.TokenRevoker
	now     func() time.Time
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens *auth.TokenManager, revoker auth.TokenRevoker) UserService {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		revoker: revoker,
		now:     time.Now,
	}
}

func (s *userService) Create(ctx context.Context, caller *auth.Session, req *dto.CreateUserRequest) (*models.User, error) {
	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%w: only administrators can create users", ErrForbidden)
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, internalError(ctx, "create user", err)
	}
	user, err := s.repo.Create(ctx, &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, mapRepoError(err, "User already exists")
		}
		return nil, internalError(ctx, "create user", err)
	}
	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role, "by", caller.UserID)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			slog.InfoContext(ctx, "login failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, internalError(ctx, "login", err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		slog.InfoContext(ctx, "login failed", "reason", "wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, internalError(ctx, "issue token", err)
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session's token for the rest of its lifetime.
func (s *userService) Logout(ctx context.Context, session *auth.Session) error {
	if session == nil || session.TokenID == "" {
		return ErrUnauthorized
	}
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, session.TokenID, ttl); err != nil {
		return internalError(ctx, "logout", err)
	}
	return nil
}

func (s *userService) List(ctx context.Context, q *dto.PaginationQuery) (*Page[models.User], error) {
	page, limit, offset := pageBounds(q.Page, q.Limit)
	search := strings.TrimSpace(q.Search)
	res, err := listPage(ctx, page, limit, offset,
		func(ctx context.Context) ([]models.User, error) {
			return s.repo.List(ctx, storage.ListParams{Search: search, Limit: limit, Offset: offset})
		},
		func(ctx context.Context) (int, error) { return s.repo.Count(ctx, search) },
	)
	if err != nil {
		return nil, internalError(ctx, "list users", err)
	}
	return res, nil
}

func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, "User not found")
		}
		return nil, internalError(ctx, "update user", err)
	}

	existing.Name = strings.TrimSpace(req.Name)
	existing.Email = normalizeEmail(req.Email)
	existing.Phone = strings.TrimSpace(req.Phone)
	existing.Role = req.Role
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, internalError(ctx, "update user", err)
		}
		existing.PasswordHash = hash
	}

	user, err := s.repo.Update(ctx, existing)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateEmail):
			return nil, mapRepoError(err, "Email already exists")
		case errors.Is(err, storage.ErrNotFound):
			return nil, mapRepoError(err, "User not found")
		}
		return nil, internalError(ctx, "update user", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, caller *auth.Session, id int64) error {
	if !caller.IsAdmin() {
		return fmt.Errorf("%w: only administrators can delete users", ErrForbidden)
	}
	if caller.UserID == id {
		return newValidationError("id", "you cannot delete your own account")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mapRepoError(err, "User not found")
		}
		return internalError(ctx, "delete user", err)
	}
	slog.InfoContext(ctx, "user deleted", "user_id", id, "by", caller.UserID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
