package postgres

import (
	"errors"
	"net/url"

	"wedding-line-bot/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GuestRepository struct - Secondary/Driven adapter for PostgreSQL
type GuestRepository struct {
	dbGorm *gorm.DB
}

// NewGuestRepository func - Creates new PostgreSQL repository.
// A nil handle leaves the adapter in degraded mode: every call reports
// domain.ErrStoreUnavailable instead of panicking, so the bot keeps serving
// cards and probes while the database is down.
func NewGuestRepository(dbGorm *gorm.DB) *GuestRepository {
	if dbGorm == nil {
		logrus.Warn("Guest repository starting without a database connection")
		return &GuestRepository{}
	}

	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &GuestRepository{
		dbGorm: dbGorm,
	}
}

// GetConfirmation func - Retrieves the confirmation row for a user, nil when absent
func (p *GuestRepository) GetConfirmation(userID string) (*domain.AttendanceConfirmation, error) {
	if p.dbGorm == nil {
		return nil, domain.ErrStoreUnavailable
	}

	var record domain.AttendanceConfirmation
	err := p.dbGorm.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &record, nil
}

// UpsertConfirmation func - Inserts or overwrites the single row for a user.
// The conflict target is the user_id primary key, so repeating the call is
// idempotent and updated_at is last-write-wins.
func (p *GuestRepository) UpsertConfirmation(userID, fullName string, guestsCount int) (*domain.AttendanceConfirmation, error) {
	if p.dbGorm == nil {
		return nil, domain.ErrStoreUnavailable
	}

	record := domain.AttendanceConfirmation{
		UserID:      userID,
		FullName:    fullName,
		GuestsCount: guestsCount,
	}
	err := p.dbGorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "guests_count", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &record, nil
}

// AppendWellWish func - Adds one more well-wish row for a user
func (p *GuestRepository) AppendWellWish(userID, message string) (*domain.WellWish, error) {
	if p.dbGorm == nil {
		return nil, domain.ErrStoreUnavailable
	}

	record := domain.WellWish{
		UserID:  userID,
		Message: message,
	}
	if err := p.dbGorm.Create(&record).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &record, nil
}

// GetConfirmations func - Retrieves confirmations with filtering and pagination
func (p *GuestRepository) GetConfirmations(condition domain.QueryGuestRequest) (*domain.ConfirmationListResponse, error) {
	if p.dbGorm == nil {
		return nil, domain.ErrStoreUnavailable
	}

	var records []domain.AttendanceConfirmation
	tx := p.dbGorm.Model(&domain.AttendanceConfirmation{})

	if condition.UserID != nil {
		tx = tx.Where("user_id = ?", *condition.UserID)
	}
	if condition.FullName != nil {
		keyword, err := url.QueryUnescape(*condition.FullName)
		if err != nil {
			logrus.Errorln(err)
			return nil, err
		}
		tx = tx.Where("full_name ILIKE ? ", "%"+keyword+"%")
	}

	var totalItem int64
	tx.Count(&totalItem)

	tx = applySort(tx, condition, "updated_at")
	tx.Find(&records)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}

	result := domain.ConfirmationListResponse{
		Confirmations: []domain.ConfirmationResponse{},
	}
	result.CurrentPage = condition.Page
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	result.TotalItem = &totalItem
	for _, record := range records {
		result.Confirmations = append(result.Confirmations, domain.ConfirmationResponse{
			UserID:      record.UserID,
			FullName:    record.FullName,
			GuestsCount: record.GuestsCount,
			CreatedAt:   record.CreatedAt,
			UpdatedAt:   record.UpdatedAt,
		})
	}
	return &result, nil
}

// GetWellWishes func - Retrieves well-wishes with filtering and pagination
func (p *GuestRepository) GetWellWishes(condition domain.QueryGuestRequest) (*domain.WellWishListResponse, error) {
	if p.dbGorm == nil {
		return nil, domain.ErrStoreUnavailable
	}

	var records []domain.WellWish
	tx := p.dbGorm.Model(&domain.WellWish{})

	if condition.UserID != nil {
		tx = tx.Where("user_id = ?", *condition.UserID)
	}

	var totalItem int64
	tx.Count(&totalItem)

	tx = applySort(tx, condition, "created_at")
	tx.Find(&records)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}

	result := domain.WellWishListResponse{
		Wishes: []domain.WellWishResponse{},
	}
	result.CurrentPage = condition.Page
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	result.TotalItem = &totalItem
	for _, record := range records {
		result.Wishes = append(result.Wishes, domain.WellWishResponse{
			ID:        record.ID,
			UserID:    record.UserID,
			Message:   record.Message,
			CreatedAt: record.CreatedAt,
		})
	}
	return &result, nil
}

// applySort applies ordering and pagination from the resolved sort method.
// The order column is validated against a whitelist at the HTTP layer.
func applySort(tx *gorm.DB, condition domain.QueryGuestRequest, defaultOrderBy string) *gorm.DB {
	order := defaultOrderBy
	asc := false
	if condition.SortMethod != nil {
		if condition.SortMethod.OrderBy != "" {
			order = condition.SortMethod.OrderBy
		}
		asc = condition.SortMethod.Asc
	}
	if asc {
		tx = tx.Order(order + " ASC")
	} else {
		tx = tx.Order(order + " DESC")
	}
	if condition.Pagination != nil {
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}
	return tx
}
