package sdk

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotInstalled is returned by RecordStore.Get for an SDK without a record.
var ErrNotInstalled = errors.New("sdk not installed")

// Installation records a completed SDK setup.
type Installation struct {
	ID          uint   `gorm:"primaryKey"`
	SDK         string `gorm:"column:sdk;size:64;uniqueIndex"`
	Platform    string `gorm:"size:16"`
	Archive     string `gorm:"size:512"`
	Path        string `gorm:"size:1024"`
	InstalledAt time.Time
}

// TableName implements gorm's tabler.
func (Installation) TableName() string {
	return "sdk_installations"
}

// RecordStore persists Installation rows.
type RecordStore struct {
	db *gorm.DB
}

// NewRecordStore creates a RecordStore on db.
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// Migrate creates or updates the installations table.
func (s *RecordStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&Installation{})
}

// Save inserts inst, replacing an earlier record of the same SDK.
func (s *RecordStore) Save(ctx context.Context, inst *Installation) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sdk"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform", "archive", "path", "installed_at"}),
	}).Create(inst).Error
}

// Get returns the record for sdk, or ErrNotInstalled.
func (s *RecordStore) Get(ctx context.Context, sdk string) (*Installation, error) {
	var inst Installation
	err := s.db.WithContext(ctx).Where("sdk = ?", sdk).First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotInstalled
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// List returns all records ordered by SDK name.
func (s *RecordStore) List(ctx context.Context) ([]Installation, error) {
	var out []Installation
	if err := s.db.WithContext(ctx).Order("sdk").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
