package tess

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/sketch"
)

// TestTessellateFill tests that a filled paint traces into a fill mesh.
func TestTessellateFill(t *testing.T) {
	p := sketch.NewPath()
	p.Rectangle(1, 2, 3, 4)

	var tr Tessellator
	geom, err := tr.Tessellate(sketch.NewStyle(sketch.Black), sketch.Filled{Element: p})
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	m, ok := geom.(*Mesh)
	if !ok {
		t.Fatalf("Tessellate() produced %T, want *Mesh", geom)
	}
	if m.Op != sketch.CommitFill {
		t.Errorf("Op = %v, want CommitFill", m.Op)
	}
	if diff := cmp.Diff(p.Elements(), m.Elements); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

// TestTessellateStroke tests thickness propagation.
func TestTessellateStroke(t *testing.T) {
	p := sketch.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)

	var tr Tessellator
	geom, err := tr.Tessellate(sketch.NewStyle(sketch.Red), sketch.Stroked{Element: p, Thickness: 3.5})
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	m := geom.(*Mesh)
	if m.Op != sketch.CommitStroke {
		t.Errorf("Op = %v, want CommitStroke", m.Op)
	}
	if m.Thickness != 3.5 {
		t.Errorf("Thickness = %v, want 3.5", m.Thickness)
	}
}

// TestTessellateErrors tests that composition errors surface.
func TestTessellateErrors(t *testing.T) {
	var tr Tessellator

	raw := sketch.NewPath()
	raw.MoveTo(0, 0)
	if _, err := tr.Tessellate(sketch.NewStyle(sketch.Black), raw); err == nil {
		t.Error("Tessellate(uncommitted paint) error = nil, want error")
	}
	if _, err := tr.Tessellate(nil, sketch.Filled{Element: raw}); err == nil {
		t.Error("Tessellate(nil style) error = nil, want error")
	}
}

// TestRenderGG tests playback of a mesh onto a raster context.
func TestRenderGG(t *testing.T) {
	dc := gg.NewContext(16, 16)
	defer dc.Close()
	dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})

	p := sketch.NewPath()
	p.Rectangle(2, 2, 12, 12)
	var tr Tessellator
	geom, err := tr.Tessellate(sketch.NewStyle(sketch.Black), sketch.Filled{Element: p})
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}

	entries := []sketch.Entry{{Style: sketch.NewStyle(sketch.Black), Geometry: geom}}
	if err := RenderGG(dc, entries); err != nil {
		t.Fatalf("RenderGG() error = %v", err)
	}

	img := dc.Image()
	r, g, b, _ := img.At(8, 8).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("center pixel = (%d,%d,%d), want black", r, g, b)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r == 0 {
		t.Error("corner pixel is black, want background")
	}
}

// TestRenderGGForeignGeometry tests that unknown geometry is rejected.
func TestRenderGGForeignGeometry(t *testing.T) {
	dc := gg.NewContext(4, 4)
	defer dc.Close()

	entries := []sketch.Entry{{Style: sketch.NewStyle(sketch.Black), Geometry: "not a mesh"}}
	if err := RenderGG(dc, entries); err == nil {
		t.Error("RenderGG(foreign geometry) error = nil, want error")
	}
}
