package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Label, LabelSmall, Badge} {
		require.NotNil(t, name.Get(), string(name))
	}
}

func TestMeasure(t *testing.T) {
	require.NoError(t, LoadDefaults())

	short, h := Measure(Label, "FTx")
	long, _ := Measure(Label, "FT = 100.0N")
	require.Positive(t, short)
	require.Positive(t, h)
	require.Greater(t, long, short)
}

func TestUnknownFontPanics(t *testing.T) {
	require.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadRejectsGarbage(t *testing.T) {
	require.Error(t, LoadFontWithSize("junk", []byte("not a font"), 12))
}
