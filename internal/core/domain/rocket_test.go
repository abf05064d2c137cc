package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNosecone() Nosecone {
	return Nosecone{
		Name:      "nose",
		Shape:     ShapeConical,
		Length:    0.3,
		Diameter:  0.05,
		Thickness: 0.002,
		Density:   1200,
	}
}

func testBodytube() Bodytube {
	return Bodytube{
		Name:      "body",
		Length:    0.5,
		Diameter:  0.05,
		Thickness: 0.002,
		Density:   1200,
	}
}

func TestNewRocket(t *testing.T) {
	stage, err := NewStage("sustainer", []Component{testNosecone(), testBodytube()}, nil)
	require.NoError(t, err)

	rocket, err := NewRocket("Test Rocket", stage)
	require.NoError(t, err)

	assert.Equal(t, "Test Rocket", rocket.Name)
	require.Len(t, rocket.Stages, 1)
	assert.InDelta(t, 0.8, rocket.Length(), 1e-12)
}

func TestNewRocket_NoStages(t *testing.T) {
	_, err := NewRocket("empty")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewStage_InvalidComponent(t *testing.T) {
	nose := testNosecone()
	nose.Length = -1

	_, err := NewStage("sustainer", []Component{nose}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewStage_PositionedComponentBeyondBody(t *testing.T) {
	ballast := Mass{Name: "ballast", Position: 2.0, Mass: 0.1}

	_, err := NewStage("sustainer", []Component{testBodytube(), ballast}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewStage_BrokenAirframeChain(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
	}{
		{
			name:       "second nosecone",
			components: []Component{testNosecone(), testBodytube(), testNosecone(), testBodytube()},
		},
		{
			name:       "nosecone behind a bodytube",
			components: []Component{testBodytube(), testNosecone()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStage("sustainer", tt.components, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewStage_InvalidMotor(t *testing.T) {
	motor := Engine{Designation: "A8", Curve: []ThrustSample{{Time: 0, Thrust: 1}}}

	_, err := NewStage("booster", []Component{testBodytube()}, &motor)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStage_Length(t *testing.T) {
	// Only nosecones and bodytubes advance the stack; positioned
	// components contribute nothing.
	fins := Finset{
		Name:     "fins",
		Fin:      Fin{Name: "fin", RootChord: 0.1, TipChord: 0.05, Span: 0.06, Thickness: 0.003, Density: 650},
		Count:    3,
		Position: 0.7,
	}
	stage, err := NewStage("sustainer", []Component{testNosecone(), testBodytube(), fins}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, stage.Length(), 1e-12)
}

func TestComponent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		component Component
		wantErr   error
	}{
		{
			name:      "valid nosecone",
			component: testNosecone(),
		},
		{
			name: "unknown nosecone shape",
			component: Nosecone{
				Name: "nose", Shape: NoseShape("haack"), Length: 0.3, Diameter: 0.05,
			},
			wantErr: ErrUnsupported,
		},
		{
			name: "power series without exponent",
			component: Nosecone{
				Name: "nose", Shape: ShapePower, Length: 0.3, Diameter: 0.05,
			},
			wantErr: ErrValidation,
		},
		{
			name:      "bodytube wall thicker than radius",
			component: Bodytube{Name: "body", Length: 0.5, Diameter: 0.05, Thickness: 0.03},
			wantErr:   ErrValidation,
		},
		{
			name:      "negative point mass",
			component: Mass{Name: "ballast", Mass: -0.1},
			wantErr:   ErrValidation,
		},
		{
			name:      "fin without root chord",
			component: Fin{Name: "fin", Span: 0.06},
			wantErr:   ErrValidation,
		},
		{
			name: "finset with zero fins",
			component: Finset{
				Name:  "fins",
				Fin:   Fin{Name: "fin", RootChord: 0.1, Span: 0.06},
				Count: 0,
			},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.component.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
