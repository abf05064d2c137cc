package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
)

func testTube() domain.Bodytube {
	return domain.Bodytube{
		Name:      "body",
		Length:    0.5,
		Diameter:  0.05,
		Thickness: 0.002,
		Density:   1200,
	}
}

func TestBodytubeMass_HollowCylinder(t *testing.T) {
	tube := testTube()

	r1 := 0.025
	r2 := r1 - 0.002
	want := 1200 * math.Pi * 0.5 * (r1*r1 - r2*r2)

	assert.InDelta(t, want, BodytubeMass(tube), 1e-12)
}

func TestRocketMass_TubePlusPointMass(t *testing.T) {
	ballast := domain.Mass{Name: "ballast", Position: 0.2, Mass: 0.1}
	stage, err := domain.NewStage("sustainer", []domain.Component{testTube(), ballast}, nil)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	r1 := 0.025
	r2 := r1 - 0.002
	tubeMass := 1200 * math.Pi * 0.5 * (r1*r1 - r2*r2)

	assert.InDelta(t, tubeMass+0.1, RocketMass(rocket), 1e-12)
}

func TestFinPlanform(t *testing.T) {
	fin := domain.Fin{RootChord: 0.1, TipChord: 0.05, Span: 0.06, Sweep: 0.04, Thickness: 0.003, Density: 650}

	assert.InDelta(t, (0.1+0.05)/2*0.06, FinPlanformArea(fin), 1e-15)
	assert.InDelta(t, FinPlanformArea(fin)*0.003, FinVolume(fin), 1e-15)
	assert.InDelta(t, 650*FinVolume(fin), FinMass(fin), 1e-15)

	set := domain.Finset{Name: "fins", Fin: fin, Count: 4, Position: 0.4}
	assert.InDelta(t, 4*FinMass(fin), FinsetMass(set), 1e-15)

	outline := FinOutline(fin)
	assert.Equal(t, [2]float64{0, 0}, outline[0])
	assert.Equal(t, [2]float64{0.04, 0.06}, outline[1])
	assert.Equal(t, [2]float64{0.04 + 0.05, 0.06}, outline[2])
	assert.Equal(t, [2]float64{0.1, 0}, outline[3])
}

func TestLayout_SingleStage(t *testing.T) {
	nose := domain.Nosecone{Name: "nose", Shape: domain.ShapeConical, Length: 0.3, Diameter: 0.05, Density: 1200}
	fins := domain.Finset{
		Name:     "fins",
		Fin:      domain.Fin{RootChord: 0.1, TipChord: 0.05, Span: 0.06, Thickness: 0.003, Density: 650},
		Count:    3,
		Position: 0.7,
	}
	stage, err := domain.NewStage("sustainer", []domain.Component{nose, testTube(), fins}, nil)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	placements := Layout(rocket)
	require.Len(t, placements, 3)

	assert.InDelta(t, 0.0, placements[0].Offset, 1e-12, "nosecone leads")
	assert.InDelta(t, 0.3, placements[1].Offset, 1e-12, "tube follows the nose")
	assert.InDelta(t, 0.7, placements[2].Offset, 1e-12, "finset resolves its explicit position")
}

func TestLayout_FlightOrderReversed(t *testing.T) {
	// Booster is Stages[0] (fires first) but sits behind the sustainer
	// in the physical stack.
	boosterTube := domain.Bodytube{Name: "booster body", Length: 0.4, Diameter: 0.05, Thickness: 0.002, Density: 1200}
	booster, err := domain.NewStage("booster", []domain.Component{boosterTube}, nil)
	require.NoError(t, err)

	nose := domain.Nosecone{Name: "nose", Shape: domain.ShapeOgive, Length: 0.3, Diameter: 0.05, Density: 1200}
	sustainer, err := domain.NewStage("sustainer", []domain.Component{nose, testTube()}, nil)
	require.NoError(t, err)

	rocket, err := domain.NewRocket("two stager", booster, sustainer)
	require.NoError(t, err)

	placements := Layout(rocket)
	require.Len(t, placements, 3)

	assert.Equal(t, 1, placements[0].Stage, "sustainer components lead the stack")
	assert.InDelta(t, 0.0, placements[0].Offset, 1e-12)
	assert.InDelta(t, 0.3, placements[1].Offset, 1e-12)
	assert.Equal(t, 0, placements[2].Stage, "booster brings up the rear")
	assert.InDelta(t, 0.8, placements[2].Offset, 1e-12)
}

func TestRocketCG_SymmetricTube(t *testing.T) {
	// A single uniform tube balances at its midpoint.
	stage, err := domain.NewStage("sustainer", []domain.Component{testTube()}, nil)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, RocketCG(rocket), 1e-12)
}

func TestRocketCG_PointMassPullsForward(t *testing.T) {
	ballast := domain.Mass{Name: "ballast", Position: 0.05, Mass: 0.5}
	stage, err := domain.NewStage("sustainer", []domain.Component{testTube(), ballast}, nil)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	cg := RocketCG(rocket)
	assert.Less(t, cg, 0.25, "heavy ballast near the nose moves the CG forward")
	assert.Greater(t, cg, 0.05)
}

func TestRocketMassAt_BurnsPropellant(t *testing.T) {
	motor := &domain.Engine{
		Designation:    "D15",
		CaseMass:       0.03,
		PropellantMass: 0.02,
		Curve: []domain.ThrustSample{
			{Time: 0, Thrust: 0},
			{Time: 0.1, Thrust: 20},
			{Time: 0.5, Thrust: 15},
			{Time: 1.0, Thrust: 0},
		},
	}
	stage, err := domain.NewStage("booster", []domain.Component{testTube()}, motor)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	full := RocketMass(rocket)
	assert.InDelta(t, full, RocketMassAt(rocket, 0), 1e-12)

	burnout := RocketMassAt(rocket, motor.BurnTime())
	assert.InDelta(t, full-0.02, burnout, 1e-9, "all propellant burned")

	half := RocketMassAt(rocket, 0.3)
	assert.Less(t, half, full)
	assert.Greater(t, half, burnout)
}

func TestMaxDiameterAndProfileHeight(t *testing.T) {
	nose := domain.Nosecone{Name: "nose", Shape: domain.ShapeConical, Length: 0.3, Diameter: 0.04, Density: 1200}
	fins := domain.Finset{
		Name:     "fins",
		Fin:      domain.Fin{RootChord: 0.1, TipChord: 0.05, Span: 0.06, Thickness: 0.003, Density: 650},
		Count:    3,
		Position: 0.6,
	}
	stage, err := domain.NewStage("sustainer", []domain.Component{nose, testTube(), fins}, nil)
	require.NoError(t, err)
	rocket, err := domain.NewRocket("test", stage)
	require.NoError(t, err)

	assert.InDelta(t, 0.05, MaxDiameter(rocket), 1e-12)
	assert.InDelta(t, 0.05+2*0.06, ProfileHeight(rocket), 1e-12)
}
