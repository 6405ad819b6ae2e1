package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// ConfirmationResponse struct - HTTP response DTO for one confirmation
	ConfirmationResponse struct {
		UserID      string    `json:"user_id" mapstructure:"user_id"`
		FullName    string    `json:"full_name" mapstructure:"full_name"`
		GuestsCount int       `json:"guests_count" mapstructure:"guests_count"`
		CreatedAt   time.Time `json:"created_at" mapstructure:"created_at"`
		UpdatedAt   time.Time `json:"updated_at" mapstructure:"updated_at"`
	}

	// WellWishResponse struct - HTTP response DTO for one well-wish
	WellWishResponse struct {
		ID        *uuid.UUID `json:"id,omitempty" mapstructure:"id"`
		UserID    string     `json:"user_id" mapstructure:"user_id"`
		Message   string     `json:"message" mapstructure:"message"`
		CreatedAt time.Time  `json:"created_at" mapstructure:"created_at"`
	}
)
