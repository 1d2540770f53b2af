package azure

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/azure/backend"
)

// Glyph is one positioned glyph of a ScaledFont.
type Glyph struct {
	Index uint32
	// Position is the pen position on the baseline.
	Position Point2D
}

func (g Glyph) wire() backend.Glyph {
	return backend.Glyph{Index: g.Index, Position: g.Position.wire()}
}

// ScaledFont is one face of an OpenType font at a fixed pixel size.
type ScaledFont struct {
	lib    backend.Library
	handle backend.ScaledFontRef
	face   *font.Face
	size   float32
}

// NewScaledFont creates a font from OpenType or collection data; index
// selects the face of a collection. It panics when the data cannot be
// parsed or the library returns a null handle.
func NewScaledFont(backendType BackendType, data []byte, index uint32, size float32) *ScaledFont {
	f, err := CreateScaledFont(backendType, data, index, size)
	if err != nil {
		panic(err)
	}
	return f
}

// CreateScaledFont is like NewScaledFont but returns the error.
func CreateScaledFont(backendType BackendType, data []byte, index uint32, size float32) (*ScaledFont, error) {
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("azure: parse font: %w", err)
	}
	if int(index) >= len(faces) {
		return nil, fmt.Errorf("azure: font index %d out of %d faces", index, len(faces))
	}
	lib, err := CurrentLibrary()
	if err != nil {
		return nil, err
	}
	h := lib.CreateScaledFontForData(backendType, data, index, size)
	if h == 0 {
		return nil, allocationFailed("CreateScaledFontForData")
	}
	return &ScaledFont{lib: lib, handle: h, face: faces[index], size: size}, nil
}

func (f *ScaledFont) ref() backend.ScaledFontRef {
	if f.handle == 0 {
		panic(released("ScaledFont"))
	}
	return f.handle
}

// Size returns the font size in pixels per em.
func (f *ScaledFont) Size() float32 {
	return f.size
}

// Release frees the font. Further calls do nothing.
func (f *ScaledFont) Release() {
	if f.handle == 0 {
		Logger().Debug("azure: ScaledFont released twice")
		return
	}
	f.lib.ReleaseScaledFont(f.handle)
	f.handle = 0
}

func (f *ScaledFont) advance(gid font.GID) fixed.Int26_6 {
	upem := float32(f.face.Upem())
	if upem == 0 {
		return 0
	}
	return fixed.Int26_6(f.face.HorizontalAdvance(gid) * f.size / upem * 64)
}

// GlyphsForString lays s out on one line starting at origin, one glyph
// per rune of its NFC form, using nominal advances. Runes the font lacks
// map to glyph 0. There is no shaping: no kerning or ligatures.
func (f *ScaledFont) GlyphsForString(s string, origin Point2D) []Glyph {
	s = norm.NFC.String(s)
	glyphs := make([]Glyph, 0, len(s))
	var pen fixed.Int26_6
	for _, r := range s {
		gid, _ := f.face.NominalGlyph(r)
		glyphs = append(glyphs, Glyph{
			Index:    uint32(gid),
			Position: Point2D{X: origin.X + float32(pen)/64, Y: origin.Y},
		})
		pen += f.advance(gid)
	}
	return glyphs
}

// Advance returns the width of s as laid out by GlyphsForString.
func (f *ScaledFont) Advance(s string) float32 {
	var pen fixed.Int26_6
	for _, r := range norm.NFC.String(s) {
		gid, _ := f.face.NominalGlyph(r)
		pen += f.advance(gid)
	}
	return float32(pen) / 64
}
