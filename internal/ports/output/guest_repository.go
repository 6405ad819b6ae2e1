package output

import "wedding-line-bot/internal/domain"

// GuestRepository interface - Output port
// Defines what the application needs from the durable guest store
type GuestRepository interface {
	// GetConfirmation retrieves the attendance confirmation for a user.
	// Returns nil if the user has not confirmed yet.
	GetConfirmation(userID string) (*domain.AttendanceConfirmation, error)

	// UpsertConfirmation inserts or overwrites the single confirmation row
	// for a user. Repeating the call with identical values leaves one
	// logical record per user; UpdatedAt is last-write-wins.
	UpsertConfirmation(userID, fullName string, guestsCount int) (*domain.AttendanceConfirmation, error)

	// AppendWellWish stores one more well-wish for the user. Existing
	// well-wishes are never overwritten.
	AppendWellWish(userID, message string) (*domain.WellWish, error)

	// GetConfirmations retrieves confirmations with filtering and pagination
	GetConfirmations(condition domain.QueryGuestRequest) (*domain.ConfirmationListResponse, error)

	// GetWellWishes retrieves well-wishes with filtering and pagination
	GetWellWishes(condition domain.QueryGuestRequest) (*domain.WellWishListResponse, error)
}
