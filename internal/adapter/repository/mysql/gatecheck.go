package mysql

import (
	"context"

	gatecheckDomain "crew-safety-backend/internal/domain/gatecheck"

	"gorm.io/gorm"
)

type GateCheckRepository struct{ db *gorm.DB }

func NewGateCheckRepository(db *gorm.DB) *GateCheckRepository {
	return &GateCheckRepository{db: db}
}

func (r *GateCheckRepository) Create(ctx context.Context, rec *gatecheckDomain.GateCheck) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *GateCheckRepository) ListAll(ctx context.Context) ([]gatecheckDomain.GateCheck, error) {
	var out []gatecheckDomain.GateCheck
	res := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}
