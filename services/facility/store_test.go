package facility_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"cryoflow/models"
	"cryoflow/services/facility"

	"github.com/stretchr/testify/assert"
)

func TestCentersReadThrough(t *testing.T) {
	loads := 0
	loader := func(ctx context.Context) (map[string]models.FacilityRecord, error) {
		loads++
		return facility.SeedCenters(), nil
	}

	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := facility.NewStore(time.Hour, loader, clock)

	first, err := store.Centers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.Contains(t, first, "davis")

	// Within the epoch: same mapping, no reload.
	now = now.Add(30 * time.Minute)
	second, err := store.Centers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, loads)
	assert.Equal(t,
		reflect.ValueOf(first).Pointer(),
		reflect.ValueOf(second).Pointer(),
		"mapping should be served as-is within the epoch")

	// Past the epoch: wholesale replacement.
	now = now.Add(31 * time.Minute)
	third, err := store.Centers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, loads)
	assert.NotEqual(t,
		reflect.ValueOf(first).Pointer(),
		reflect.ValueOf(third).Pointer())
}

func TestStatus(t *testing.T) {
	store := facility.NewStore(time.Hour, func(ctx context.Context) (map[string]models.FacilityRecord, error) {
		return facility.SeedCenters(), nil
	}, nil)

	assert.Equal(t, "cold", store.Status().State)

	_, err := store.Centers(context.Background())
	assert.NoError(t, err)

	status := store.Status()
	assert.Equal(t, "warm", status.State)
	assert.Equal(t, 3, status.Centers)
	assert.False(t, status.RefreshedAt.IsZero())
}

func TestDefaultLoaderHonorsContext(t *testing.T) {
	loader := facility.DefaultLoader(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeedLinks(t *testing.T) {
	centers := facility.SeedCenters()

	davis := centers["davis"]
	svc, ok := davis.FindService("whole-body cryotherapy")
	assert.True(t, ok)
	assert.Equal(t, "https://hirefrederick.com/us-cryotherapy-davis/whole-body", svc.BookingLink)

	_, ok = davis.FindService("hot yoga")
	assert.False(t, ok)
}
