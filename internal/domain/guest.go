package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceConfirmation struct - Core domain entity, one row per LINE user
type AttendanceConfirmation struct {
	UserID      string    `gorm:"type:varchar(64);primary_key;"`
	FullName    string    `gorm:"type:varchar(255);not null"`
	GuestsCount int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"type:timestamp"`
	UpdatedAt   time.Time `gorm:"type:timestamp"`
}

// TableName func
func (a *AttendanceConfirmation) TableName() string {
	return "attendance_confirmations"
}

// WellWish struct - Core domain entity, append-only per user
type WellWish struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	UserID    string     `gorm:"type:varchar(64);not null;index"`
	Message   string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"type:timestamp"`
}

// TableName func
func (w *WellWish) TableName() string {
	return "well_wishes"
}

// BeforeCreate hook - generates UUID before creating
func (w *WellWish) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID != nil {
		return nil
	}

	uuid, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	w.ID = &uuid
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&AttendanceConfirmation{}, &WellWish{})
	if err != nil {
		panic(err)
	}
}
