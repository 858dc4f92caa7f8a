package sketch

import "errors"

// Composition errors reported by TraceOutline (and therefore by Canvas.Draw).
var (
	// ErrNoCommit is returned when a paint produced geometry but never
	// committed it with a fill or stroke. Wrap raw geometry in Filled or
	// Stroked.
	ErrNoCommit = errors.New("sketch: paint committed no fill or stroke")

	// ErrCommitConflict is returned when a paint committed more than once,
	// e.g. a Filled nested inside a Stroked. A geometry takes exactly one
	// terminal style per draw call; draw it twice to render it with two
	// styles.
	ErrCommitConflict = errors.New("sketch: paint committed more than one fill or stroke")
)

// Surface is the path-building target a Paint draws onto. Path events
// accumulate geometry; Fill and Stroke commit it.
type Surface interface {
	MoveTo(p Point)
	LineTo(p Point)
	QuadraticTo(ctrl, p Point)
	CubicTo(ctrl1, ctrl2, p Point)
	ClosePath()

	// SetStrokeThickness sets the thickness used by a following Stroke.
	SetStrokeThickness(t float64)

	// Fill commits the accumulated geometry as a filled shape.
	Fill()

	// Stroke commits the accumulated geometry as a stroked outline at the
	// active thickness.
	Stroke()
}

// Paint is anything that can be drawn into a Canvas. Implementations replay
// their geometry onto the surface; replaying the same Paint twice must yield
// identical geometry.
type Paint interface {
	Paint(s Surface)
}

// Filled paints its element and commits it with a single fill.
type Filled struct {
	Element Paint
}

// Paint implements the Paint interface.
func (f Filled) Paint(s Surface) {
	f.Element.Paint(s)
	s.Fill()
}

// Stroked paints its element and commits it with a single stroke at
// Thickness.
type Stroked struct {
	Element   Paint
	Thickness float64
}

// Paint implements the Paint interface.
func (st Stroked) Paint(s Surface) {
	st.Element.Paint(s)
	s.SetStrokeThickness(st.Thickness)
	s.Stroke()
}

// CommitOp is the terminal style a paint committed its geometry with.
type CommitOp int

const (
	// CommitFill commits geometry as a filled shape.
	CommitFill CommitOp = iota
	// CommitStroke commits geometry as a stroked outline.
	CommitStroke
)

// Outline is the recorded result of replaying a Paint: its path events and
// the single terminal commit. Tessellators consume outlines to build their
// backend-specific geometry.
type Outline struct {
	Path      *Path
	Op        CommitOp
	Thickness float64
}

// TraceOutline replays p onto a recording surface and validates its
// composition: exactly one fill or stroke commit covering all geometry.
// Zero commits yield ErrNoCommit; nested or repeated commits yield
// ErrCommitConflict.
func TraceOutline(p Paint) (*Outline, error) {
	rec := &outlineRecorder{
		outline: Outline{Path: NewPath(), Thickness: 1},
	}
	p.Paint(rec)
	if rec.commits == 0 {
		return nil, ErrNoCommit
	}
	if rec.commits > 1 {
		return nil, ErrCommitConflict
	}
	return &rec.outline, nil
}

// outlineRecorder is the Surface used by TraceOutline. It forwards path
// events to a Path and counts commits.
type outlineRecorder struct {
	outline Outline
	commits int
}

func (r *outlineRecorder) MoveTo(p Point) {
	r.outline.Path.MoveTo(p.X, p.Y)
}

func (r *outlineRecorder) LineTo(p Point) {
	r.outline.Path.LineTo(p.X, p.Y)
}

func (r *outlineRecorder) QuadraticTo(ctrl, p Point) {
	r.outline.Path.QuadraticTo(ctrl.X, ctrl.Y, p.X, p.Y)
}

func (r *outlineRecorder) CubicTo(ctrl1, ctrl2, p Point) {
	r.outline.Path.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, p.X, p.Y)
}

func (r *outlineRecorder) ClosePath() {
	r.outline.Path.ClosePath()
}

func (r *outlineRecorder) SetStrokeThickness(t float64) {
	r.outline.Thickness = t
}

func (r *outlineRecorder) Fill() {
	r.outline.Op = CommitFill
	r.commits++
}

func (r *outlineRecorder) Stroke() {
	r.outline.Op = CommitStroke
	r.commits++
}
