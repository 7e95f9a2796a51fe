// Package seed loads reference data and a bootstrap administrator from a YAML file.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/storage"

	"gopkg.in/yaml.v3"
)

// File is the seed document.
type File struct {
	Admin           *Admin                  `yaml:"admin"`
	Skills          []models.Skill          `yaml:"skills"`
	Positions       []models.Position       `yaml:"positions"`
	InterviewRounds []models.InterviewRound `yaml:"interviewRounds"`
}

// Admin is created when no user with its email exists yet.
type Admin struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Phone    string `yaml:"phone"`
}

// Parse decodes a seed document, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i := range f.Positions {
		if f.Positions[i].Level == "" {
			f.Positions[i].Level = models.DefaultPositionLevel
		}
		if !f.Positions[i].Level.IsValid() {
			return nil, fmt.Errorf("position %q: invalid level %q", f.Positions[i].Name, f.Positions[i].Level)
		}
	}
	return &f, nil
}

// Load reads and parses the seed file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Repositories are the stores written by Apply.
type Repositories struct {
	Users     storage.UserRepository
	Skills    storage.SkillRepository
	Positions storage.PositionRepository
	Rounds    storage.InterviewRoundRepository
}

// Result counts the rows Apply inserted.
type Result struct {
	AdminCreated bool
	Skills       int
	Positions    int
	Rounds       int
}

// Apply inserts every entry of f that does not exist yet. Existing rows are
// left untouched, so Apply can run on every start.
func Apply(ctx context.Context, f *File, repos Repositories) (Result, error) {
	var res Result

	if f.Admin != nil && f.Admin.Email != "" {
		created, err := ensureAdmin(ctx, repos.Users, f.Admin)
		if err != nil {
			return res, err
		}
		res.AdminCreated = created
	}

	for i := range f.Skills {
		s := f.Skills[i]
		if s.Category == "" {
			s.Category = models.DefaultSkillCategory
		}
		ok, err := created(repos.Skills.Create(ctx, &s))
		if err != nil {
			return res, fmt.Errorf("seed skill %q: %w", s.Name, err)
		}
		if ok {
			res.Skills++
		}
	}
	for i := range f.Positions {
		p := f.Positions[i]
		if p.Department == "" {
			p.Department = models.DefaultPositionDepartment
		}
		ok, err := created(repos.Positions.Create(ctx, &p))
		if err != nil {
			return res, fmt.Errorf("seed position %q: %w", p.Name, err)
		}
		if ok {
			res.Positions++
		}
	}
	for i := range f.InterviewRounds {
		r := f.InterviewRounds[i]
		if r.Description == "" {
			r.Description = models.DefaultRoundDescription
		}
		ok, err := created(repos.Rounds.Create(ctx, &r))
		if err != nil {
			return res, fmt.Errorf("seed interview round %q: %w", r.Name, err)
		}
		if ok {
			res.Rounds++
		}
	}

	slog.InfoContext(ctx, "seed applied",
		"admin_created", res.AdminCreated,
		"skills", res.Skills,
		"positions", res.Positions,
		"interview_rounds", res.Rounds,
	)
	return res, nil
}

// created treats a conflict as an existing row.
func created[T any](_ *T, err error) (bool, error) {
	if errors.Is(err, storage.ErrConflict) {
		return false, nil
	}
	return err == nil, err
}

func ensureAdmin(ctx context.Context, users storage.UserRepository, a *Admin) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(a.Email))
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	if a.Password == "" {
		return false, errors.New("seed admin: password is required")
	}
	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	_, err = users.Create(ctx, &models.User{
		Name:         a.Name,
		Email:        email,
		Phone:        a.Phone,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	return true, nil
}
