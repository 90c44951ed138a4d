package main

import (
	"bytes"
	"testing"

	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runForces(t *testing.T, args ...string) (Report, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)

	var r Report
	if code == 0 {
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &r))
	}
	return r, errOut.String(), code
}

func TestSuspendedDefaults(t *testing.T) {
	r, _, code := runForces(t)
	require.Equal(t, 0, code)
	require.Equal(t, physics.ModeSuspended, r.Mode)
	require.Equal(t, 100.0, r.Fg)
	require.Equal(t, 100.0, r.Ft)
	require.Equal(t, 0.0, r.Fn)
	require.True(t, r.IsFloating)
	require.False(t, r.ContactLost)
	require.Nil(t, r.Angle)
	require.Nil(t, r.Tension)
}

func TestPulled(t *testing.T) {
	r, _, code := runForces(t, "-mode", "pulled", "-mass", "10", "-angle", "30", "-tension", "100")
	require.Equal(t, 0, code)
	require.Equal(t, physics.ModePulled, r.Mode)
	require.InDelta(t, 86.6, r.Ftx, 0.01)
	require.InDelta(t, 50.0, r.Fty, 1e-9)
	require.InDelta(t, 50.0, r.Fn, 1e-9)
	require.False(t, r.ContactLost)
	require.NotNil(t, r.Angle)
	require.Equal(t, 30.0, *r.Angle)
}

func TestPulledLiftsOff(t *testing.T) {
	r, _, code := runForces(t, "-mode", "PULLED", "-mass", "5", "-angle", "90", "-tension", "80")
	require.Equal(t, 0, code)
	require.Equal(t, 0.0, r.Fn)
	require.True(t, r.IsFloating)
	require.True(t, r.ContactLost)
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"zero mass", []string{"-mass", "0"}, 1, "mass"},
		{"negative g", []string{"-g", "-9.8"}, 1, "gravitational"},
		{"angle out of range", []string{"-mode", "pulled", "-angle", "120"}, 1, "angle"},
		{"negative tension", []string{"-mode", "pulled", "-tension", "-1"}, 1, "tension"},
		{"unknown mode", []string{"-mode", "sliding"}, 2, "unknown mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runForces(t, tt.args...)
			require.Equal(t, tt.code, code)
			require.Contains(t, stderr, tt.msg)
		})
	}
}

func TestSuspendedIgnoresAngleFlags(t *testing.T) {
	r, _, code := runForces(t, "-angle", "120", "-tension", "-5")
	require.Equal(t, 0, code)
	require.Equal(t, physics.ModeSuspended, r.Mode)
}
