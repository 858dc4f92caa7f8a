package pdf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

func squareEntry(t *testing.T, b *Backend) sketch.Entry {
	t.Helper()
	p := sketch.NewPath()
	p.Rectangle(10, 10, 30, 30)
	geom, err := b.Tessellator().Tessellate(sketch.NewStyle(sketch.Blue), sketch.Filled{Element: p})
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	return sketch.Entry{Style: sketch.NewStyle(sketch.Blue), Geometry: geom}
}

// TestSaveFrameWritesPDF tests that a submitted queue becomes a PDF page.
func TestSaveFrameWritesPDF(t *testing.T) {
	b := New(WithFrameLimit(1))
	if err := b.Init(sketch.Config{Size: 64}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	if err := b.Submit([]sketch.Entry{squareEntry(t, b)}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	dir := t.TempDir()
	if err := b.SaveFrame(dir, 3); err != nil {
		t.Fatalf("SaveFrame() error = %v", err)
	}

	path := filepath.Join(dir, "000003.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("captured frame missing: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("capture does not start with %%PDF header: %q", data[:min(8, len(data))])
	}
}

// TestSubmitRejectsForeignGeometry tests geometry validation at submit time.
func TestSubmitRejectsForeignGeometry(t *testing.T) {
	b := New()
	if err := b.Init(sketch.Config{Size: 64}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	entries := []sketch.Entry{{Style: sketch.NewStyle(sketch.Black), Geometry: 42}}
	if err := b.Submit(entries); err == nil {
		t.Error("Submit(foreign geometry) error = nil, want error")
	}
}

// TestFrameLimit tests that the event stream closes after the limit.
func TestFrameLimit(t *testing.T) {
	b := New(WithFrameLimit(1))
	if err := b.Init(sketch.Config{Size: 8}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	if _, err := b.Events(); err != nil {
		t.Fatalf("Events() first poll error = %v", err)
	}
	if _, err := b.Events(); !errors.Is(err, sketch.ErrStreamClosed) {
		t.Errorf("Events() after limit error = %v, want ErrStreamClosed", err)
	}
}

// TestEmptyQueue tests that a frame with no draws still produces a page.
func TestEmptyQueue(t *testing.T) {
	b := New()
	if err := b.Init(sketch.Config{Size: 32}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	if err := b.Submit(nil); err != nil {
		t.Fatalf("Submit(nil) error = %v", err)
	}
	dir := t.TempDir()
	if err := b.SaveFrame(dir, 0); err != nil {
		t.Fatalf("SaveFrame() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "000000.pdf")); err != nil {
		t.Fatalf("captured frame missing: %v", err)
	}
}
