package application

import (
	"wedding-line-bot/internal/domain"
	"wedding-line-bot/internal/ports/output"
)

// GuestService struct - Application service implementing the admin read use cases
type GuestService struct {
	repo output.GuestRepository
}

// NewGuestService func - Creates new guest service
func NewGuestService(repo output.GuestRepository) *GuestService {
	return &GuestService{
		repo: repo,
	}
}

// GetConfirmations func - Use case: List attendance confirmations with
// pagination and filtering
func (s *GuestService) GetConfirmations(condition domain.QueryGuestRequest) (*domain.ConfirmationListResponse, error) {
	applyQueryDefaults(&condition, "updated_at")
	return s.repo.GetConfirmations(condition)
}

// GetWellWishes func - Use case: List well-wishes with pagination and filtering
func (s *GuestService) GetWellWishes(condition domain.QueryGuestRequest) (*domain.WellWishListResponse, error) {
	applyQueryDefaults(&condition, "created_at")
	return s.repo.GetWellWishes(condition)
}

// applyQueryDefaults fills page 1 / limit 100 and resolves the sort method,
// falling back to the given column in ascending order
func applyQueryDefaults(condition *domain.QueryGuestRequest, defaultOrderBy string) {
	var (
		page    int
		perPage int
		offset  int
	)
	if condition.Page != nil {
		page = *condition.Page
	} else {
		page = 1
		condition.Page = &page
	}
	if condition.Limit != nil {
		perPage = *condition.Limit
	} else {
		perPage = 100
		condition.Limit = &perPage
	}
	offset = (page - 1) * perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: offset,
	}

	asc := true
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	orderBy := defaultOrderBy
	if condition.OrderBy != nil {
		orderBy = *condition.OrderBy
	}
	condition.SortMethod = &domain.SortMethod{
		Asc:     asc,
		OrderBy: orderBy,
	}
}
