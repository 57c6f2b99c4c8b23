package readstore

import (
	"context"

	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/infra"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/queries"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BusinessReadQueries interface {
	GetBusinessByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Businesses, error)
	GetStaffMember(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStaffMemberParams) (sqlc.StaffMembers, error)
	ListBusinessZones(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListBusinessZonesRow, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error) {
	row, err := r.queries.GetBusinessByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business by ID", err)
	}

	return &queries.BusinessView{
		ID:          row.ID,
		OwnerUserID: row.OwnerUserID,
		Name:        row.Name,
		TimeZone:    row.TimeZone,
	}, nil
}

func (r *BusinessReadStore) FindStaff(ctx context.Context, businessID, staffID uuid.UUID) (*queries.StaffView, error) {
	row, err := r.queries.GetStaffMember(ctx, r.db, sqlc.GetStaffMemberParams{ID: staffID, BusinessID: businessID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff member", err)
	}

	return &queries.StaffView{
		ID:          row.ID,
		BusinessID:  row.BusinessID,
		DisplayName: row.DisplayName,
		IsActive:    row.IsActive,
	}, nil
}

// ListZones lists every business with its time zone. Unknown zone names fall back to UTC.
func (r *BusinessReadStore) ListZones(ctx context.Context) ([]shared.BusinessZone, error) {
	rows, err := r.queries.ListBusinessZones(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list businesses", err)
	}
	zones := make([]shared.BusinessZone, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, shared.BusinessZone{ID: row.ID, Location: civil.LoadLocation(row.TimeZone)})
	}
	return zones, nil
}
