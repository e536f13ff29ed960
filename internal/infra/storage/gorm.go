package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-auto/internal/models"
)

// GormStore keeps each collection as one row of collection_documents.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, name string) ([]byte, error) {
	var doc models.CollectionDocument
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Payload), nil
}

func (s *GormStore) Save(ctx context.Context, name string, data []byte) error {
	doc := models.CollectionDocument{
		Name:      name,
		Payload:   string(data),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&doc).Error
}

var _ Store = (*GormStore)(nil)
