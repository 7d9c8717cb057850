// Package storemock holds function-backed mocks of the record repositories.
package storemock

import (
	"context"

	gatecheckDomain "crew-safety-backend/internal/domain/gatecheck"
	inspectionDomain "crew-safety-backend/internal/domain/inspection"
)

// InspectionRepo is a function-backed mock that satisfies
// inspection.Repository. Only methods you need are included; add more as
// tests require.
type InspectionRepo struct {
	CreateFn  func(ctx context.Context, rec *inspectionDomain.Inspection) error
	ListAllFn func(ctx context.Context) ([]inspectionDomain.Inspection, error)
}

func (m *InspectionRepo) Create(ctx context.Context, rec *inspectionDomain.Inspection) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *InspectionRepo) ListAll(ctx context.Context) ([]inspectionDomain.Inspection, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

// GateCheckRepo is the gate-check twin of InspectionRepo.
type GateCheckRepo struct {
	CreateFn  func(ctx context.Context, rec *gatecheckDomain.GateCheck) error
	ListAllFn func(ctx context.Context) ([]gatecheckDomain.GateCheck, error)
}

func (m *GateCheckRepo) Create(ctx context.Context, rec *gatecheckDomain.GateCheck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *GateCheckRepo) ListAll(ctx context.Context) ([]gatecheckDomain.GateCheck, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
