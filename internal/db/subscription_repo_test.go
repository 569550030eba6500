package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plancheck/internal/types"
)

// --- Mock DBTX ---

type mockDBTX struct {
	mock.Mock
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *mockDBTX) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if r := args.Get(0); r != nil {
		return r.(pgx.Rows), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

// --- Mock Row ---

type mockRow struct {
	scanErr error
	scanFn  func(dest ...any) error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.scanFn != nil {
		return r.scanFn(dest...)
	}
	return r.scanErr
}

// --- SubscriptionRepo Tests ---

func TestSubscriptionRepo_GetCurrent_Success(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewSubscriptionRepo(dbx)

	periodEnd := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{
			scanFn: func(dest ...any) error {
				*dest[0].(*string) = "sub_01"
				*dest[1].(*[]byte) = []byte(`{"MAIL_BUSINESS":1,"MEMBER_MAIL_BUSINESS":2,"STALE_ADDON":0}`)
				*dest[2].(*types.Cycle) = types.CycleYearly
				*dest[3].(*types.Currency) = types.CurrencyEUR
				*dest[4].(*string) = "SAVE10"
				*dest[5].(*types.SubscriptionStatus) = types.SubStatusActive
				*dest[6].(*bool) = true
				*dest[7].(*types.ExternalBilling) = types.ExternalNone
				*dest[8].(*time.Time) = periodEnd
				return nil
			},
		})

	sub, err := repo.GetCurrent(context.Background(), "user_1")
	require.NoError(t, err)

	assert.Equal(t, "sub_01", sub.ID)
	assert.Equal(t, types.CycleYearly, sub.Cycle)
	assert.Equal(t, "SAVE10", sub.Coupon)
	assert.True(t, sub.Renew)
	assert.Equal(t, periodEnd, sub.PeriodEnd)

	// Zero-quantity entries are pruned on load.
	want := types.PlanIDs{
		types.PlanMailBusiness:        1,
		types.AddonMemberMailBusiness: 2,
	}
	assert.True(t, sub.Plans.Equal(want), "plans = %v", sub.Plans)

	dbx.AssertExpectations(t)
}

func TestSubscriptionRepo_GetCurrent_NotFound(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewSubscriptionRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	sub, err := repo.GetCurrent(context.Background(), "user_1")
	require.Error(t, err)
	assert.Nil(t, sub)

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeNotFoundSubscription, appErr.Code)
}

func TestSubscriptionRepo_GetCurrent_QueryError(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewSubscriptionRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{scanErr: errors.New("connection reset")})

	_, err := repo.GetCurrent(context.Background(), "user_1")

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalDB, appErr.Code)
}

func TestSubscriptionRepo_GetCurrent_BadPlansJSON(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewSubscriptionRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{
			scanFn: func(dest ...any) error {
				*dest[1].(*[]byte) = []byte(`{`)
				return nil
			},
		})

	_, err := repo.GetCurrent(context.Background(), "user_1")

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalDB, appErr.Code)
}
