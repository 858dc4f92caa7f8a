// Package tess provides the shared tessellator used by the bundled
// backends: it traces a styled paint into a mesh of path events plus its
// terminal commit, and can play meshes back onto a gg drawing context.
package tess

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
)

// Mesh is the renderable form produced by Tessellator: the traced path
// events of one paint together with its single commit. Backends replay the
// events onto their drawing surface and apply the commit.
type Mesh struct {
	Elements  []sketch.PathElement
	Op        sketch.CommitOp
	Thickness float64
}

// Tessellator traces paints into meshes. The zero value is ready to use.
type Tessellator struct{}

// Tessellate implements sketch.Tessellator. Composition errors (no commit,
// conflicting commits) surface here, at canvas draw time.
func (Tessellator) Tessellate(style *sketch.Style, p sketch.Paint) (sketch.Tessellation, error) {
	if style == nil {
		return nil, fmt.Errorf("tess: nil style")
	}
	o, err := sketch.TraceOutline(p)
	if err != nil {
		return nil, err
	}
	return &Mesh{
		Elements:  o.Path.Elements(),
		Op:        o.Op,
		Thickness: o.Thickness,
	}, nil
}

// RenderGG plays submitted entries back onto dc in order. Entries must carry
// meshes produced by Tessellator.
func RenderGG(dc *gg.Context, entries []sketch.Entry) error {
	for i, e := range entries {
		m, ok := e.Geometry.(*Mesh)
		if !ok {
			return fmt.Errorf("tess: entry %d carries foreign geometry %T", i, e.Geometry)
		}

		dc.ClearPath()
		dc.SetRGBA(e.Style.Color.R, e.Style.Color.G, e.Style.Color.B, e.Style.Color.A)
		dc.SetFillRule(fillRule(e.Style.FillRule))

		for _, elem := range m.Elements {
			switch el := elem.(type) {
			case sketch.MoveTo:
				dc.MoveTo(el.Point.X, el.Point.Y)
			case sketch.LineTo:
				dc.LineTo(el.Point.X, el.Point.Y)
			case sketch.QuadTo:
				dc.QuadraticTo(el.Control.X, el.Control.Y, el.Point.X, el.Point.Y)
			case sketch.CubicTo:
				dc.CubicTo(el.Control1.X, el.Control1.Y, el.Control2.X, el.Control2.Y, el.Point.X, el.Point.Y)
			case sketch.Close:
				dc.ClosePath()
			}
		}

		switch m.Op {
		case sketch.CommitFill:
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("tess: fill entry %d: %w", i, err)
			}
		case sketch.CommitStroke:
			dc.SetLineWidth(m.Thickness)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("tess: stroke entry %d: %w", i, err)
			}
		}
	}
	return nil
}

func fillRule(r sketch.FillRule) gg.FillRule {
	if r == sketch.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}
