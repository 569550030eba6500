package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plancheck/internal/types"
)

func TestUsageRepo_GetSnapshot_Success(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewUsageRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{
			scanFn: func(dest ...any) error {
				*dest[0].(*int) = 7
				*dest[1].(*int) = 2
				*dest[2].(*int) = 80
				*dest[3].(*int64) = 3 << 40
				*dest[4].(*int64) = 2 << 40
				*dest[5].(*int) = 65
				*dest[6].(*int) = 4
				*dest[7].(*int) = 1
				*dest[8].(*int) = 120
				return nil
			},
		})

	usage, err := repo.GetSnapshot(context.Background(), "org_1")
	require.NoError(t, err)

	assert.Equal(t, 7, usage.UsedMembers)
	assert.Equal(t, 2, usage.UsedDomains)
	assert.Equal(t, 80, usage.UsedAddresses)
	assert.Equal(t, int64(3)<<40, usage.UsedSpace)
	assert.Equal(t, int64(2)<<40, usage.AssignedSpace)
	assert.Equal(t, 65, usage.UsedVPN)
	assert.Equal(t, 4, usage.UsedAISeats)
	assert.Equal(t, 1, usage.UsedLumoSeats)
	assert.Equal(t, 120, usage.UsedCalendars)

	dbx.AssertExpectations(t)
}

func TestUsageRepo_GetSnapshot_NoRowDefaultsToZero(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewUsageRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	usage, err := repo.GetSnapshot(context.Background(), "org_new")
	require.NoError(t, err)
	assert.Equal(t, &types.OrganizationUsage{}, usage)
}

func TestUsageRepo_GetSnapshot_QueryError(t *testing.T) {
	dbx := new(mockDBTX)
	repo := NewUsageRepo(dbx)

	dbx.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{scanErr: errors.New("connection reset")})

	_, err := repo.GetSnapshot(context.Background(), "org_1")

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalDB, appErr.Code)
}
