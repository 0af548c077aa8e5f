// Package screenshot persists the current frame as a PNG and copies its
// text form to the system clipboard when one is available.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/space-invaders/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Stats are printed in the footer row of the image
type Stats struct {
	Score      int
	Seconds    int
	Bullets    int
	MaxBullets int
}

func (s Stats) String() string {
	return fmt.Sprintf("Score: %04d  Time: %ds  Bullets: %d/%d", s.Score, s.Seconds, s.Bullets, s.MaxBullets)
}

// Service numbers captures sequentially within one directory
type Service struct {
	dir     string
	counter int
	face    *basicfont.Face

	// CopyText receives the text frame; nil disables clipboard export
	CopyText func(string) error
}

// NewService targets dir, created on first capture
func NewService(dir string) *Service {
	s := &Service{
		dir:  dir,
		face: basicfont.Face7x13,
	}
	if !clipboard.Unsupported {
		s.CopyText = clipboard.WriteAll
	}
	return s
}

// Capture writes screenshot_NNNN.png and returns its path. A clipboard
// failure does not fail the capture.
func (s *Service) Capture(buf *render.Buffer, stats Stats) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	s.counter++
	path := filepath.Join(s.dir, fmt.Sprintf("screenshot_%04d.png", s.counter))

	img := Rasterize(buf, stats, s.face)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close screenshot: %w", err)
	}

	if s.CopyText != nil {
		_ = s.CopyText(string(buf.Snapshot()) + "\n" + stats.String())
	}
	return path, nil
}

// Rasterize draws each cell with the fixed-width face on black, plus one
// footer row for stats
func Rasterize(buf *render.Buffer, stats Stats, face *basicfont.Face) *image.RGBA {
	w, h := buf.Bounds()
	cw, ch := face.Advance, face.Height

	img := image.NewRGBA(image.Rect(0, 0, w*cw, (h+1)*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.Get(x, y)
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			d.Src = image.NewUniform(toRGBA(c.Fg))
			d.Dot = fixed.P(x*cw, y*ch+face.Ascent)
			d.DrawString(string(asciiFallback(c.Rune)))
		}
	}

	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(0, h*ch+face.Ascent)
	d.DrawString(stats.String())
	return img
}

func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// asciiFallback maps box-drawing glyphs outside the 7x13 face
func asciiFallback(r rune) rune {
	switch r {
	case '─':
		return '-'
	case '│':
		return '|'
	case '┌', '┐', '└', '┘':
		return '+'
	}
	return r
}
