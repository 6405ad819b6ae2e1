package input

import "wedding-line-bot/internal/domain"

// GuestService interface - Input port (use case)
// Defines the read side served to the couple over the admin API
type GuestService interface {
	GetConfirmations(condition domain.QueryGuestRequest) (*domain.ConfirmationListResponse, error)
	GetWellWishes(condition domain.QueryGuestRequest) (*domain.WellWishListResponse, error)
}
