package sketch

// FillRule selects which areas count as inside a filled path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Style describes how committed geometry is rendered. The same *Style may be
// shared by many draw calls; canvas entries reference it, they do not copy
// it.
type Style struct {
	Color    RGBA
	FillRule FillRule
}

// NewStyle returns a style with the given color and default fill rule.
func NewStyle(c RGBA) *Style {
	return &Style{
		Color:    c,
		FillRule: FillRuleNonZero,
	}
}
