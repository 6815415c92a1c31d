package vehicle

import (
	"context"
	"errors"
	"time"

	"autogiro-backend/internal/domain/uow"
	domain "autogiro-backend/internal/domain/vehicle"
	"autogiro-backend/internal/infrastructure/metrics"
	"autogiro-backend/internal/usecase/credit"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	vehicles domain.Repository
	log      *zap.Logger
	loc      *time.Location
}

// NewUsecase: loc decides where "today" starts for the deactivation job.
func NewUsecase(vehicles domain.Repository, log *zap.Logger, loc *time.Location) *Usecase {
	if loc == nil {
		loc = time.UTC
	}
	return &Usecase{vehicles: vehicles, log: log, loc: loc}
}

func (u *Usecase) List(ctx context.Context, q ListQuery) (*PageDTO, error) {
	page, limit := credit.Paging(q.Page, q.Limit)
	rows, err := u.vehicles.ListActive(ctx, page, limit)
	if err != nil {
		return nil, uow.Transient(err)
	}
	total, err := u.vehicles.CountActive(ctx)
	if err != nil {
		return nil, uow.Transient(err)
	}
	if rows == nil {
		rows = []domain.Vehicle{}
	}
	return &PageDTO{
		Vehicles:      rows,
		CurrentPage:   page,
		TotalPages:    credit.TotalPages(total, limit),
		TotalVehicles: total,
	}, nil
}

// GetByExternalID also returns inactive vehicles so proposal history can link back.
func (u *Usecase) GetByExternalID(ctx context.Context, externalID string) (*domain.Vehicle, error) {
	return found(u.vehicles.GetByExternalID(ctx, externalID))
}

func (u *Usecase) GetByID(ctx context.Context, id uint64) (*domain.Vehicle, error) {
	return found(u.vehicles.GetActiveByID(ctx, id))
}

// DeactivateExpired closes unsold vehicles whose batch date has passed.
// Vehicles with a winning proposal are already inactive and never touched.
func (u *Usecase) DeactivateExpired(ctx context.Context, now time.Time) (*DeactivationReport, error) {
	local := now.In(u.loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, u.loc)

	rows, err := u.vehicles.DeactivateExpired(ctx, today)
	if err != nil {
		u.log.Error("vehicle deactivation failed", zap.Error(err))
		return nil, uow.Transient(err)
	}

	rep := &DeactivationReport{Deactivated: len(rows), ExternalIDs: make([]string, 0, len(rows))}
	for _, v := range rows {
		rep.ExternalIDs = append(rep.ExternalIDs, v.ExternalID)
		u.log.Info("vehicle deactivated",
			zap.Uint64("vehicle_id", v.ID),
			zap.String("external_id", v.ExternalID),
			zap.String("title", v.Title))
	}
	metrics.VehiclesDeactivated(len(rows))
	u.log.Info("vehicle deactivation finished", zap.Int("count", len(rows)), zap.Time("today", today))
	return rep, nil
}

func found(v *domain.Vehicle, err error) (*domain.Vehicle, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, uow.Transient(err)
	}
	return v, nil
}
