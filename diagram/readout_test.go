package diagram

import (
	"strings"
	"testing"

	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
)

func cardKinds(cards []Card) []Kind {
	var out []Kind
	for _, c := range cards {
		out = append(out, c.Kind)
	}
	return out
}

func TestCards(t *testing.T) {
	suspended := Cards(physics.Resolve(physics.Suspended(10, 10)))
	require.Equal(t, []Kind{KindWeight, KindTension}, cardKinds(suspended))
	require.Equal(t, "100.0 N", suspended[0].Value)
	require.Equal(t, "FT = Fg", suspended[1].Formula)

	pulled := Cards(physics.Resolve(physics.Pulled(10, 10, 30, 100)))
	require.Equal(t, []Kind{KindWeight, KindTension, KindNormal, KindTensionY, KindTensionX}, cardKinds(pulled))
	require.Equal(t, "50.0 N", pulled[2].Value)
	require.Equal(t, "86.6 N", pulled[4].Value)
}

func TestExplain(t *testing.T) {
	st := physics.Suspended(10, 10)
	lines := Explain(st, physics.Resolve(st))
	require.Contains(t, lines[1], "100.0 N")

	st = physics.Pulled(10, 10, 30, 100)
	lines = Explain(st, physics.Resolve(st))
	require.Len(t, lines, 3)
	require.Equal(t, "FN = max(0, Fg - FTy) = max(0, 100.0 - 50.0) = 50.0 N", lines[2])

	st = physics.Pulled(10, 10, 90, 150)
	lines = Explain(st, physics.Resolve(st))
	require.Len(t, lines, 4)
	require.Equal(t, "FN = max(0, Fg - FTy) = max(0, 100.0 - 150.0) = 0.0 N", lines[2])
	require.Contains(t, lines[3], "lifts off")

	st = physics.Pulled(5, 10, 90, 100)
	lines = Explain(st, physics.Resolve(st))
	require.Equal(t, "FN = max(0, Fg - FTy) = max(0, 50.0 - 100.0) = 0.0 N", lines[2])
	require.NotContains(t, strings.Join(lines, "\n"), "-50.0")

	st = physics.Pulled(10, 10, 90, 100)
	lines = Explain(st, physics.Resolve(st))
	require.Contains(t, lines[3], "about to lift off")
}

func TestExplainBalancedAtAngle(t *testing.T) {
	// sin 30° * 200 only approximately equals 100
	st := physics.Pulled(10, 10, 30, 200)
	f := physics.Resolve(st)
	require.False(t, f.ContactLost())

	lines := Explain(st, f)
	require.Len(t, lines, 4)
	require.Equal(t, "FN = max(0, Fg - FTy) = max(0, 100.0 - 100.0) = 0.0 N", lines[2])
	require.Contains(t, lines[3], "about to lift off")
}
