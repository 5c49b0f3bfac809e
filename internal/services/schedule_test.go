package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDoses(t *testing.T) {
	ctx := context.Background()
	_, _, ss := newMemoryServices()

	total, err := ss.AddDoses(ctx, "Moderna", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	total, err = ss.AddDoses(ctx, "Moderna", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	for _, n := range []int{0, -1} {
		_, err = ss.AddDoses(ctx, "Moderna", n)
		assert.ErrorIs(t, err, common.ErrBadRequest)
	}
}

func TestUploadAvailability_InvalidDate(t *testing.T) {
	_, _, ss := newMemoryServices()

	err := ss.UploadAvailability(context.Background(), "c1", "2023/06/01")
	assert.ErrorIs(t, err, common.ErrInvalidDate)
}

func TestSearchSchedule(t *testing.T) {
	ctx := context.Background()
	_, _, ss := newMemoryServices()

	require.NoError(t, ss.UploadAvailability(ctx, "zed", "2023-06-01"))
	require.NoError(t, ss.UploadAvailability(ctx, "amy", "2023-06-01"))
	require.NoError(t, ss.UploadAvailability(ctx, "bob", "2023-06-02"))
	_, err := ss.AddDoses(ctx, "Pfizer", 2)
	require.NoError(t, err)
	_, err = ss.AddDoses(ctx, "J&J", 1)
	require.NoError(t, err)

	sched, err := ss.SearchSchedule(ctx, "2023-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "zed"}, sched.Caregivers)
	assert.Equal(t, []models.Vaccine{{Name: "J&J", Doses: 1}, {Name: "Pfizer", Doses: 2}}, sched.Vaccines)

	empty, err := ss.SearchSchedule(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, empty.Caregivers)
}

func TestAppointments_ByRole(t *testing.T) {
	ctx := context.Background()
	_, rs, ss := newMemoryServices()

	_, err := ss.AddDoses(ctx, "X", 3)
	require.NoError(t, err)
	require.NoError(t, ss.UploadAvailability(ctx, "b", "2023-06-01"))
	require.NoError(t, ss.UploadAvailability(ctx, "a", "2023-06-02"))
	require.NoError(t, ss.UploadAvailability(ctx, "b", "2023-06-03"))

	var last *models.Reservation
	for _, d := range []string{"2023-06-01", "2023-06-02", "2023-06-03"} {
		res, err := rs.Reserve(ctx, d, "X", "p1")
		require.NoError(t, err)
		last = res
	}

	// the post-reserve listing groups by caregiver
	require.Len(t, last.Listing, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{last.Listing[0].ID, last.Listing[1].ID, last.Listing[2].ID})

	mine, err := ss.Appointments(ctx, models.RolePatient, "p1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{mine[0].ID, mine[1].ID, mine[2].ID})

	theirs, err := ss.Appointments(ctx, models.RoleCaregiver, "b")
	require.NoError(t, err)
	require.Len(t, theirs, 2)
	assert.Equal(t, int64(1), theirs[0].ID)
	assert.Equal(t, int64(3), theirs[1].ID)

	_, err = ss.Appointments(ctx, models.RoleNone, "p1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
