// Package mysql holds the GORM-backed record repositories. The naming is
// historical; the same code runs against any GORM dialect (tests use
// in-memory sqlite).
package mysql

import (
	"context"

	inspectionDomain "crew-safety-backend/internal/domain/inspection"

	"gorm.io/gorm"
)

type InspectionRepository struct{ db *gorm.DB }

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, rec *inspectionDomain.Inspection) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *InspectionRepository) ListAll(ctx context.Context) ([]inspectionDomain.Inspection, error) {
	var out []inspectionDomain.Inspection
	res := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}
