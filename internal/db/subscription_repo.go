package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"plancheck/internal/types"
)

// SubscriptionRepo reads the customer's current subscription record. The
// record is written by the billing backend's webhook pipeline; this service
// only ever reads it.
type SubscriptionRepo struct {
	db DBTX
}

// NewSubscriptionRepo creates a SubscriptionRepo backed by the given
// connection (pool or transaction).
func NewSubscriptionRepo(db DBTX) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// GetCurrent returns the user's active subscription. The plans column is a
// JSONB map of plan-or-addon name to quantity, matching PlanIDs.
//
// Returns a not_found_subscription AppError when the user has no active
// subscription row; callers treat that as the free tier.
func (r *SubscriptionRepo) GetCurrent(ctx context.Context, userID string) (*types.Subscription, error) {
	var (
		sub       types.Subscription
		plansJSON []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, plans, cycle, currency, coupon, status, renew, external, period_end
		 FROM subscriptions
		 WHERE user_id = $1 AND status = 'active'
		 ORDER BY period_end DESC
		 LIMIT 1`,
		userID,
	).Scan(
		&sub.ID,
		&plansJSON,
		&sub.Cycle,
		&sub.Currency,
		&sub.Coupon,
		&sub.Status,
		&sub.Renew,
		&sub.External,
		&sub.PeriodEnd,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, types.NewAppError(types.ErrCodeNotFoundSubscription, "no active subscription", err)
	}
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to query subscription", err)
	}

	if err := json.Unmarshal(plansJSON, &sub.Plans); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to decode subscription plans", err)
	}
	sub.Plans = sub.Plans.Normalize()

	return &sub, nil
}
