package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-invaders/render"
)

func testBuffer() *render.Buffer {
	buf := render.NewBuffer(12, 4)
	buf.SetString(0, 0, "┌──────────┐", tcell.ColorWhite, 12)
	buf.Set(5, 2, 'A', tcell.ColorAqua)
	buf.SetString(2, 1, "><", tcell.ColorRed, 12)
	return buf
}

func TestCaptureWritesNumberedPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewService(dir)
	var copied string
	s.CopyText = func(text string) error {
		copied = text
		return nil
	}

	stats := Stats{Score: 20, Seconds: 7, Bullets: 1, MaxBullets: 3}
	path, err := s.Capture(testBuffer(), stats)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if filepath.Base(path) != "screenshot_0001.png" {
		t.Errorf("Unexpected filename %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 12*7 || b.Dy() != 5*13 {
		t.Errorf("Unexpected image size %dx%d", b.Dx(), b.Dy())
	}

	if !strings.Contains(copied, "><") || !strings.Contains(copied, "Score: 0020") {
		t.Errorf("Unexpected clipboard text %q", copied)
	}

	path2, err := s.Capture(testBuffer(), stats)
	if err != nil {
		t.Fatalf("second Capture failed: %v", err)
	}
	if filepath.Base(path2) != "screenshot_0002.png" {
		t.Errorf("Expected sequential numbering, got %s", path2)
	}
}

func TestCaptureClipboardFailureIgnored(t *testing.T) {
	s := NewService(t.TempDir())
	s.CopyText = func(string) error { return os.ErrPermission }

	if _, err := s.Capture(testBuffer(), Stats{}); err != nil {
		t.Errorf("Clipboard failure must not fail capture: %v", err)
	}
}

func TestCaptureBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	os.WriteFile(file, []byte("x"), 0644)

	s := NewService(filepath.Join(file, "sub"))
	s.CopyText = nil
	if _, err := s.Capture(testBuffer(), Stats{}); err == nil {
		t.Error("Expected error when dir cannot be created")
	}
}

func TestRasterizeDrawsGlyphs(t *testing.T) {
	buf := render.NewBuffer(3, 1)
	buf.Set(1, 0, 'A', tcell.ColorAqua)
	img := Rasterize(buf, Stats{}, NewService("").face)

	lit := false
	for y := 0; y < 13; y++ {
		for x := 7; x < 14; x++ {
			c := img.RGBAAt(x, y)
			if c.G > 0 || c.B > 0 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("Expected glyph pixels in the second cell")
	}

	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			if c := img.RGBAAt(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				t.Fatalf("Blank cell has lit pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestASCIIFallback(t *testing.T) {
	if asciiFallback('─') != '-' || asciiFallback('│') != '|' || asciiFallback('┘') != '+' {
		t.Error("Unexpected box-drawing fallback")
	}
	if asciiFallback('A') != 'A' {
		t.Error("ASCII must pass through")
	}
}
