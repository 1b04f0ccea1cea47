package nozzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputsAreValid(t *testing.T) {
	in := DefaultInputs()
	require.NoError(t, in.Validate())
	assert.Equal(t, 2.8, in.ExitMach)
	assert.Equal(t, 1.22, in.SpecificHeatRatio)
	assert.Equal(t, 20.0, in.ThroatDiameter)
	assert.Equal(t, DefaultSemiAngleDeg, in.SemiAngleDeg)
}

func TestValidateNamesField(t *testing.T) {
	in := DefaultInputs()
	in.SpecificHeatRatio = 1

	err := in.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "specific heat ratio")
	assert.Contains(t, err.Error(), "must be > 1")
}

func TestValidateAcceptsSubsonicExit(t *testing.T) {
	in := DefaultInputs()
	in.ExitMach = 0.3
	assert.NoError(t, in.Validate())
}
