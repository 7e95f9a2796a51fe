package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hrm-api/internal/storage"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// mapRepoError maps storage errors to service errors. The message is what
// handlers show to clients for 404 and 409 responses.
func mapRepoError(err error, message string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case errors.Is(err, storage.ErrDuplicateEmail), errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %s", ErrConflict, message)
	}
	return err
}

// internalError logs an unexpected failure and wraps it for the caller.
func internalError(ctx context.Context, op string, err error) error {
	slog.ErrorContext(ctx, "unexpected error", "op", op, "error", err)
	return fmt.Errorf("internal error during %s: %w", op, err)
}

// Page is one page of a listing.
type Page[T any] struct {
	Items    []T
	Total    int
	Page     int
	NextPage *int
}

// pageBounds applies defaults and the page size ceiling and returns limit and offset.
func pageBounds(page, limit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

// nextPage is page+1 while rows remain past this page, otherwise nil.
func nextPage(page, limit, offset, total int) *int {
	if offset+limit < total {
		n := page + 1
		return &n
	}
	return nil
}

// listPage runs the data and count queries concurrently.
func listPage[T any](
	ctx context.Context,
	page, limit, offset int,
	list func(ctx context.Context) ([]T, error),
	count func(ctx context.Context) (int, error),
) (*Page[T], error) {
	var (
		items []T
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = list(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: page, NextPage: nextPage(page, limit, offset, total)}, nil
}

// splitList parses a comma-separated query value, dropping blanks.
func splitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
