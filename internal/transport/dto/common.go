package dto

import "hrm-api/internal/validation"

// PaginationQuery is the page/limit/search triple accepted by every list endpoint.
type PaginationQuery struct {
	Page   int    `form:"page" validate:"omitempty,gte=1"`
	Limit  int    `form:"limit" validate:"omitempty,gte=1"`
	Search string `form:"search" validate:"max=200"`
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID int64 `uri:"id" validate:"required,gt=0"`
}

// ListResponse is the envelope of every paginated listing.
type ListResponse[T any] struct {
	Data     []T  `json:"data"`
	Total    int  `json:"total"`
	NextPage *int `json:"nextPage"`
}

// DataResponse wraps a single resource.
type DataResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for every non-2xx status.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}
