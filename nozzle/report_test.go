package nozzle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceReport = `===== Isentropic Nozzle Calculations =====
Exit Mach Number (Me): 2.8
Pressure Ratio (Pe/P0): 0.0318
Temperature Ratio (Te/T0): 0.5369
Density Ratio (rho_e/rho_0): 0.0592
Area Ratio (Ae/At): 4.86
Throat Diameter (Dt): 20 mm
Exit Diameter (De): 44.10 mm
Nozzle Length (L): 44.97 mm
`

func TestWriteReport(t *testing.T) {
	r, err := Calculate(DefaultInputs())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r))
	assert.Equal(t, referenceReport, buf.String())
}

func TestWriteReportEchoesInputsAsGiven(t *testing.T) {
	r, err := Calculate(Inputs{ExitMach: 3, SpecificHeatRatio: 1.4, ThroatDiameter: 12.5, SemiAngleDeg: 15})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r))
	assert.Contains(t, buf.String(), "Exit Mach Number (Me): 3\n")
	assert.Contains(t, buf.String(), "Throat Diameter (Dt): 12.5 mm\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteReportPropagatesWriteError(t *testing.T) {
	r, err := Calculate(DefaultInputs())
	require.NoError(t, err)

	assert.EqualError(t, WriteReport(failingWriter{}, r), "closed")
}
