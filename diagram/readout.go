package diagram

import (
	"fmt"

	"github.com/automoto/forcelab/physics"
)

// balanceTolerance absorbs rounding in FTy when it balances Fg exactly
const balanceTolerance = 1e-9

// Card is one numeric readout with the formula that produced it
type Card struct {
	Kind    Kind
	Title   string
	Value   string
	Formula string
}

// Cards lists the readouts for a mode: Fg and FT always, then FN, FTy and FTx
// when pulled.
func Cards(f physics.Forces) []Card {
	newtons := func(v float64) string { return fmt.Sprintf("%.1f N", v) }

	if f.Mode != physics.ModePulled {
		return []Card{
			{KindWeight, "Weight", newtons(f.Fg), "Fg = m × g"},
			{KindTension, "Tension", newtons(f.Ft), "FT = Fg"},
		}
	}
	return []Card{
		{KindWeight, "Weight", newtons(f.Fg), "Fg = m × g"},
		{KindTension, "Tension", newtons(f.Ft), "FT (applied)"},
		{KindNormal, "Normal force", newtons(f.Fn), "FN = max(0, Fg - FTy)"},
		{KindTensionY, "Vertical pull", newtons(f.Fty), "FTy = FT × sin θ"},
		{KindTensionX, "Horizontal pull", newtons(f.Ftx), "FTx = FT × cos θ"},
	}
}

// Explain describes in words why the forces take their current values
func Explain(st physics.State, f physics.Forces) []string {
	towed, ok := st.Setup.(physics.Towed)
	if !ok {
		return []string{
			"The block hangs at rest, so the rope must hold its entire weight.",
			fmt.Sprintf("FT = Fg = m × g = %.1f × %.1f = %.1f N", st.Mass, st.G, f.Ft),
			"There is no surface underneath, so there is no normal force.",
		}
	}

	lines := []string{
		fmt.Sprintf("The rope pulls at %.0f° with FT = %.1f N.", towed.Angle, f.Ft),
		fmt.Sprintf("Its vertical part FTy = %.1f × sin %.0f° = %.1f N lifts some of the weight.", f.Ft, towed.Angle, f.Fty),
		fmt.Sprintf("FN = max(0, Fg - FTy) = max(0, %.1f - %.1f) = %.1f N", f.Fg, f.Fty, f.Fn),
	}
	if f.ContactLost() {
		lines = append(lines,
			"FTy is larger than Fg. A surface can only push, never pull, so FN stays at 0 N and the block lifts off.")
	} else if f.Fty >= f.Fg-balanceTolerance {
		lines = append(lines, "FTy exactly balances Fg: the block is about to lift off.")
	}
	return lines
}
