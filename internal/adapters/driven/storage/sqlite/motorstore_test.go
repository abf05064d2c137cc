package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *MotorStore {
	t.Helper()
	store, err := NewMotorStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testMotor(t *testing.T, designation string) driven.StoredMotor {
	t.Helper()
	engine, _, err := domain.NewEngine(domain.Engine{
		Designation:    designation,
		Manufacturer:   "Estes",
		Delays:         "0-3-5",
		Diameter:       0.024,
		Length:         0.07,
		CaseMass:       0.0215,
		PropellantMass: 0.0211,
		Curve: []domain.ThrustSample{
			{Time: 0, Thrust: 0},
			{Time: 0.1, Thrust: 20},
			{Time: 0.5, Thrust: 15},
			{Time: 1.0, Thrust: 0},
		},
	})
	require.NoError(t, err)
	return driven.StoredMotor{Engine: engine}
}

func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testMotor(t, "D12")))

	got, err := store.Get(ctx, "D12")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "D12", got.Designation)
	assert.Equal(t, "Estes", got.Manufacturer)
	assert.InDelta(t, 0.024, got.Diameter, 1e-9)
	assert.InDelta(t, 11.75, got.TotalImpulse, 1e-9)
	assert.Equal(t, "D", got.ImpulseClass)

	// The full engine survives the document round trip.
	assert.Equal(t, "0-3-5", got.Engine.Delays)
	require.Len(t, got.Engine.Curve, 4)
	assert.InDelta(t, 11.75, got.Engine.TotalImpulse(), 1e-9)
}

func TestSave_DuplicateDesignation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testMotor(t, "D12")))
	err := store.Save(ctx, testMotor(t, "D12"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "Z9000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_SortedByDesignation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"F32", "A8", "D12"} {
		require.NoError(t, store.Save(ctx, testMotor(t, d)))
	}

	motors, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, motors, 3)
	assert.Equal(t, "A8", motors[0].Designation)
	assert.Equal(t, "D12", motors[1].Designation)
	assert.Equal(t, "F32", motors[2].Designation)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testMotor(t, "D12")))
	require.NoError(t, store.Delete(ctx, "D12"))

	_, err := store.Get(ctx, "D12")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.Delete(ctx, "D12")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewMotorStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testMotor(t, "D12")))
	require.NoError(t, store.Close())

	reopened, err := NewMotorStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "D12")
	require.NoError(t, err)
	assert.Equal(t, "D12", got.Designation)
}
