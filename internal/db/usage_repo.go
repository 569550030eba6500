package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"plancheck/internal/types"
)

// UsageRepo reads the organization's consumption counters. The counters are
// maintained elsewhere; plan switching only ever reads them, as a floor for
// addon sizing.
type UsageRepo struct {
	db DBTX
}

// NewUsageRepo creates a UsageRepo backed by the given connection.
func NewUsageRepo(db DBTX) *UsageRepo {
	return &UsageRepo{db: db}
}

// GetSnapshot returns the organization's current usage counters. An
// organization with no usage row yet gets a zero snapshot, not an error:
// addon sizing treats absent usage as nothing consumed.
func (r *UsageRepo) GetSnapshot(ctx context.Context, orgID string) (*types.OrganizationUsage, error) {
	var u types.OrganizationUsage
	err := r.db.QueryRow(ctx,
		`SELECT used_members, used_domains, used_addresses,
		        used_space, assigned_space,
		        used_vpn, used_ai_seats, used_lumo_seats, used_calendars
		 FROM organization_usage
		 WHERE organization_id = $1`,
		orgID,
	).Scan(
		&u.UsedMembers,
		&u.UsedDomains,
		&u.UsedAddresses,
		&u.UsedSpace,
		&u.AssignedSpace,
		&u.UsedVPN,
		&u.UsedAISeats,
		&u.UsedLumoSeats,
		&u.UsedCalendars,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return &types.OrganizationUsage{}, nil
	}
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to query organization usage", err)
	}

	return &u, nil
}
