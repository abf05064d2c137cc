package native

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rocketdoc-cli/internal/convert"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	nativeloader "github.com/custodia-labs/rocketdoc-cli/internal/loaders/native"
)

func testEngine(t *testing.T) domain.Engine {
	t.Helper()
	e, _, err := domain.NewEngine(domain.Engine{
		Designation:    "D12",
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
	return e
}

func testRocket(t *testing.T) domain.Rocket {
	t.Helper()
	motor := testEngine(t)
	override := 0.015

	booster, err := domain.NewStage("Booster", []domain.Component{
		domain.Bodytube{Name: "Booster tube", Length: 0.2, Diameter: 0.024, Thickness: 0.001, Density: 680},
		domain.Finset{
			Name:     "Fins",
			Fin:      domain.Fin{Name: "Fin", RootChord: 0.05, TipChord: 0.03, Span: 0.04, Sweep: 0.02, Thickness: 0.003, Density: 650},
			Count:    4,
			Position: 0.15,
		},
	}, &motor)
	require.NoError(t, err)

	sustainer, err := domain.NewStage("Sustainer", []domain.Component{
		domain.Nosecone{Name: "Nose", Shape: domain.ShapeOgive, Length: 0.07, Diameter: 0.024, Thickness: 0.002, Density: 1040, MassOverride: &override},
		domain.Bodytube{Name: "Tube", Length: 0.3, Diameter: 0.024, Thickness: 0.001, Density: 680},
		domain.Mass{Name: "Chute", Position: 0.05, Mass: 0.01},
	}, nil)
	require.NoError(t, err)

	rocket, err := domain.NewRocket("Alpha", booster, sustainer)
	require.NoError(t, err)
	rocket.Description = "two stage test design"
	return rocket
}

// Dump then load must reproduce the model exactly, fin names, overrides
// and motor included.
func TestRocketRoundTrip(t *testing.T) {
	rocket := testRocket(t)

	data, err := New().Dump(context.Background(), rocket, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, string(data), `format = 'rocketdoc/1'`)

	result, err := nativeloader.New().Load(context.Background(), data, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, rocket, result.Rocket)
	assert.Empty(t, result.Warnings)
}

func TestEngineRoundTrip(t *testing.T) {
	engine := testEngine(t)

	data, err := NewEngine().Dump(context.Background(), engine, convert.DefaultOptions())
	require.NoError(t, err)

	result, err := nativeloader.NewEngine().Load(context.Background(), data, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, engine, result.Engine)
}
