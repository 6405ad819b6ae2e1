package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// LineWebhookRequest struct - Domain LINE webhook request DTO
	LineWebhookRequest struct {
		Events []LineWebhookEvent
	}

	// LineReplyMessageRequest struct - Domain LINE reply message request DTO
	LineReplyMessageRequest struct {
		ReplyToken string
		Messages   []LineOutgoingMessage
	}

	// LinePushMessageRequest struct - Domain LINE push message request DTO
	LinePushMessageRequest struct {
		To       string
		Messages []LineOutgoingMessage
	}

	// LineOutgoingMessage struct - Domain LINE outgoing message DTO.
	// Text messages carry Text; flex messages carry AltText plus the raw
	// pre-authored card payload in Contents.
	LineOutgoingMessage struct {
		Type      LineMessageType
		Text      string
		AltText   string
		Contents  json.RawMessage
		PackageID string // For sticker
		StickerID string // For sticker
	}

	// LineMessageResponse struct - Domain LINE API response DTO
	LineMessageResponse struct {
		Status  string
		Message string
	}

	// LineProfile struct - Domain LINE user profile DTO
	LineProfile struct {
		UserID      string
		DisplayName string
		PictureURL  string
	}

	// QueryGuestRequest struct - Domain query request DTO for admin reads
	QueryGuestRequest struct {
		UserID   *string
		FullName *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// ConfirmationResponse struct - Domain response DTO
	ConfirmationResponse struct {
		UserID      string    `json:"user_id"`
		FullName    string    `json:"full_name"`
		GuestsCount int       `json:"guests_count"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	// ConfirmationListResponse struct - Domain list response DTO
	ConfirmationListResponse struct {
		Confirmations []ConfirmationResponse
		CurrentPage   *int
		PerPage       *int
		TotalItem     *int64
	}

	// WellWishResponse struct - Domain response DTO
	WellWishResponse struct {
		ID        *uuid.UUID `json:"id"`
		UserID    string     `json:"user_id"`
		Message   string     `json:"message"`
		CreatedAt time.Time  `json:"created_at"`
	}

	// WellWishListResponse struct - Domain list response DTO
	WellWishListResponse struct {
		Wishes      []WellWishResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}
)
