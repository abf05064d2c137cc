package rasp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	rasploader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/rasp"
)

func testEngine(t *testing.T) domain.Engine {
	t.Helper()
	e, _, err := domain.NewEngine(domain.Engine{
		Designation:    "D12",
		Manufacturer:   "Estes",
		Comments:       "Estes D12\n",
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
	return e
}

func TestDump(t *testing.T) {
	data, err := New().Dump(context.Background(), testEngine(t), convert.DefaultOptions())
	require.NoError(t, err)

	want := ";Estes D12\n" +
		"D12 24 70 0-3-5 0.0211 0.0426 Estes\n" +
		"0.000 0.000\n" +
		"0.100 20.000\n" +
		"0.500 15.000\n" +
		"1.000 0.000\n"
	assert.Equal(t, want, string(data))
}

func TestDump_SpacesCollapseToHyphens(t *testing.T) {
	e := testEngine(t)
	e.Designation = "D12 sport"
	e.Manufacturer = "Apogee Components"

	data, err := New().Dump(context.Background(), e, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, string(data), "D12-sport 24 70 0-3-5 0.0211 0.0426 Apogee-Components\n")
}

func TestDump_DefaultsForEmptyFields(t *testing.T) {
	e := testEngine(t)
	e.Manufacturer = ""
	e.Delays = ""
	e.Comments = ""

	data, err := New().Dump(context.Background(), e, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "D12 24 70 0 0.0211 0.0426 unknown\n"+
		"0.000 0.000\n0.100 20.000\n0.500 15.000\n1.000 0.000\n", string(data))
}

// Dumped files must re-load to the same engine within table precision.
func TestRoundTrip(t *testing.T) {
	engine := testEngine(t)

	data, err := New().Dump(context.Background(), engine, convert.DefaultOptions())
	require.NoError(t, err)

	result, err := rasploader.New().Load(context.Background(), data, convert.DefaultOptions())
	require.NoError(t, err)

	got := result.Engine
	assert.Equal(t, engine.Designation, got.Designation)
	assert.Equal(t, engine.Manufacturer, got.Manufacturer)
	assert.Equal(t, engine.Delays, got.Delays)
	assert.InDelta(t, engine.Diameter, got.Diameter, 1e-9)
	assert.InDelta(t, engine.Length, got.Length, 1e-9)
	assert.InDelta(t, engine.PropellantMass, got.PropellantMass, 1e-9)
	assert.InDelta(t, engine.CaseMass, got.CaseMass, 1e-9)
	assert.Equal(t, engine.Curve, got.Curve)
	assert.Equal(t, engine.Comments, got.Comments)
}
