package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FromFont measures printable-ASCII advances of a TTF/OTF font at the given
// pixel size. Runes the font lacks, and everything outside the table, fall
// back to the average measured advance.
func FromFont(name string, data []byte, size float64) (*Table, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", name, err)
	}
	defer face.Close()

	t := &Table{name: name, size: size}
	var (
		total   float64
		count   int
		missing []rune
	)
	for r := rune(firstRune); r <= lastRune; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			missing = append(missing, r)
			continue
		}
		px := float64(adv) / 64.0 // fixed.Int26_6 → float64
		t.advances[r-firstRune] = px
		total += px
		count++
	}

	if count > 0 {
		t.fallback = total / float64(count)
	} else {
		t.fallback = size * 0.6
	}
	for _, r := range missing {
		t.advances[r-firstRune] = t.fallback
	}

	buf := &sfnt.Buffer{}
	if n, err := f.Name(buf, sfnt.NameIDFamily); err == nil && n != "" {
		t.name = n
	}

	return t, nil
}

// LoadFontFile measures a TTF/OTF from a filesystem path.
func LoadFontFile(path string, size float64) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromFont(name, data, size)
}
