package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/rangetable"
)

var (
	// ErrAtlasBuilt is returned when fonts are added to an atlas that has
	// already been rasterized.
	ErrAtlasBuilt = errors.New("gui: font atlas already built")
	// ErrNoFontSources is returned by Build on an empty atlas.
	ErrNoFontSources = errors.New("gui: no font sources")
)

// Font measures text and produces glyph quads against a texture.
type Font interface {
	// TextureID returns the texture holding the glyph images.
	TextureID() uint32
	// HasGlyph reports whether r has a rasterized glyph.
	HasGlyph(r rune) bool
	// MeasureText returns the size of text at the given scale.
	MeasureText(text string, scale float32) Vec2
	// AppendGlyphQuads appends quads for text with its top-left at (x, y).
	AppendGlyphQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad
	// LineHeight returns the line advance at the given scale.
	LineHeight(scale float32) float32
}

// FontConfig tunes how one font source is rasterized.
type FontConfig struct {
	// SizePixels is the rasterization size in physical pixels.
	SizePixels float32
	// RasterizerMultiply brightens (>1) or thins (<1) glyph coverage.
	// Zero means 1.
	RasterizerMultiply float32
	// GlyphRanges selects the code points to rasterize.
	// Nil means GlyphRangesDefault.
	GlyphRanges *unicode.RangeTable
	// FaceSize is the native pixel height of a Face source. Zero means
	// the face's line height.
	FaceSize float32
}

// FontSource is one entry of the atlas source list: TrueType/OpenType
// data, a prebuilt font.Face such as a bitmap font, or the built-in 7x13
// font. A Face source is not closed by the atlas.
type FontSource struct {
	Name    string
	Data    []byte
	Face    font.Face
	Default bool
	Config  FontConfig
}

var glyphRangesDefault = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0020, Hi: 0x00FF, Stride: 1}},
}

// GlyphRangesDefault covers Basic Latin and Latin-1 Supplement.
func GlyphRangesDefault() *unicode.RangeTable {
	return glyphRangesDefault
}

var glyphRangesJapanese = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(
		glyphRangesDefault,
		&unicode.RangeTable{R16: []unicode.Range16{
			{Lo: 0x2000, Hi: 0x206F, Stride: 1}, // General punctuation
			{Lo: 0x3000, Hi: 0x303F, Stride: 1}, // CJK symbols and punctuation
			{Lo: 0x31F0, Hi: 0x31FF, Stride: 1}, // Katakana phonetic extensions
			{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}, // Half-width and full-width forms
			{Lo: 0xFFFD, Hi: 0xFFFD, Stride: 1}, // Replacement character
		}},
		unicode.Hiragana,
		unicode.Katakana,
		unicode.Han,
	)
})

// GlyphRangesJapanese covers Latin, kana, CJK punctuation and ideographs.
func GlyphRangesJapanese() *unicode.RangeTable {
	return glyphRangesJapanese()
}

// forEachRune calls fn for every code point in t, in ascending order.
func forEachRune(t *unicode.RangeTable, fn func(rune)) {
	for _, r := range t.R16 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			fn(c)
		}
	}
	for _, r := range t.R32 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			fn(c)
		}
	}
}

type atlasGlyph struct {
	// Quad relative to the pen at the top of the line, in raster pixels.
	x0, y0, x1, y1 float32
	u0, v0, u1, v1 float32
	advance        float32

	// Packed location before UVs are known.
	px, py, pw, ph int
}

// FontAtlas rasterizes an ordered font source list into one alpha texture.
// Earlier sources win when several provide the same code point.
type FontAtlas struct {
	sources []FontSource
	glyphs  map[rune]*atlasGlyph

	pixels *image.Alpha
	texID  uint32
	built  bool

	sizePixels float32
	ascent     float32
	lineHeight float32
}

// atlasWidth is the fixed texture width; height grows to fit.
const atlasWidth = 1024

// NewFontAtlas creates an empty atlas.
func NewFontAtlas() *FontAtlas {
	return &FontAtlas{glyphs: make(map[rune]*atlasGlyph)}
}

// AddFont appends sources to the list. It fails once the atlas is built.
func (a *FontAtlas) AddFont(sources ...FontSource) error {
	if a.built {
		return ErrAtlasBuilt
	}
	a.sources = append(a.sources, sources...)
	return nil
}

// Sources returns the registered source list.
func (a *FontAtlas) Sources() []FontSource {
	return a.sources
}

// Built reports whether Build has completed.
func (a *FontAtlas) Built() bool {
	return a.built
}

// glyphFace is a rasterizer for one source.
type glyphFace struct {
	face  font.Face
	has   func(rune) bool
	scale float32 // raster pixels per face pixel
	mult  float32
	close func() error
}

func openFace(src FontSource) (*glyphFace, error) {
	mult := src.Config.RasterizerMultiply
	if mult == 0 {
		mult = 1
	}

	if src.Default {
		face := basicfont.Face7x13
		scale := float32(1)
		if src.Config.SizePixels > 0 {
			scale = src.Config.SizePixels / float32(face.Height)
		}
		return &glyphFace{
			face: face,
			has: func(r rune) bool {
				for _, rr := range face.Ranges {
					if r >= rr.Low && r < rr.High {
						return true
					}
				}
				return false
			},
			scale: scale,
			mult:  mult,
			close: func() error { return nil },
		}, nil
	}

	if src.Face != nil {
		return openBitmapFace(src, mult), nil
	}

	if src.Config.SizePixels <= 0 {
		return nil, fmt.Errorf("font %q: size must be positive, got %v", src.Name, src.Config.SizePixels)
	}
	f, err := opentype.Parse(src.Data)
	if err != nil {
		return nil, fmt.Errorf("font %q: parse: %w", src.Name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(src.Config.SizePixels),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q: face: %w", src.Name, err)
	}
	var buf sfnt.Buffer
	return &glyphFace{
		face: face,
		has: func(r rune) bool {
			gid, err := f.GlyphIndex(&buf, r)
			return err == nil && gid != 0
		},
		scale: 1,
		mult:  mult,
		close: face.Close,
	}, nil
}

// openBitmapFace wraps a caller-owned face that is drawn at its native
// size and scaled to SizePixels. Bitmap faces report blank glyphs for
// code points they lack, so a rune counts only if its mask has ink.
func openBitmapFace(src FontSource, mult float32) *glyphFace {
	face := src.Face
	native := src.Config.FaceSize
	if native <= 0 {
		native = fixedToFloat(face.Metrics().Height)
	}
	scale := float32(1)
	if src.Config.SizePixels > 0 && native > 0 {
		scale = src.Config.SizePixels / native
	}
	return &glyphFace{
		face: face,
		has: func(r rune) bool {
			if r > 0xFFFF {
				return false
			}
			if _, ok := face.GlyphAdvance(r); !ok {
				return false
			}
			if unicode.IsSpace(r) {
				return true
			}
			dr, mask, mp, _, ok := face.Glyph(fixed.Point26_6{}, r)
			return ok && hasInk(mask, mp, dr.Dx(), dr.Dy())
		},
		scale: scale,
		mult:  mult,
		close: func() error { return nil },
	}
}

func hasInk(mask image.Image, mp image.Point, w, h int) bool {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if _, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA(); a != 0 {
				return true
			}
		}
	}
	return false
}

// Build rasterizes every source. Metrics come from the first source.
func (a *FontAtlas) Build() error {
	if a.built {
		return ErrAtlasBuilt
	}
	if len(a.sources) == 0 {
		return ErrNoFontSources
	}

	type pending struct {
		r    rune
		face *glyphFace
	}
	var (
		faces []*glyphFace
		queue []pending
	)
	defer func() {
		for _, f := range faces {
			_ = f.close()
		}
	}()

	for i, src := range a.sources {
		gf, err := openFace(src)
		if err != nil {
			return err
		}
		faces = append(faces, gf)

		if i == 0 {
			m := gf.face.Metrics()
			a.ascent = fixedToFloat(m.Ascent) * gf.scale
			a.lineHeight = fixedToFloat(m.Height) * gf.scale
			a.sizePixels = src.Config.SizePixels
			if a.sizePixels == 0 {
				a.sizePixels = a.lineHeight
			}
		}

		ranges := src.Config.GlyphRanges
		if ranges == nil {
			ranges = GlyphRangesDefault()
		}
		forEachRune(ranges, func(r rune) {
			if _, taken := a.glyphs[r]; taken || !gf.has(r) {
				return
			}
			a.glyphs[r] = &atlasGlyph{}
			queue = append(queue, pending{r: r, face: gf})
		})
	}

	// Rasterize into temporary masks and shelf-pack them.
	type raster struct {
		g    *atlasGlyph
		mask *image.Alpha
	}
	rasters := make([]raster, 0, len(queue))
	x, y, shelf := 1, 1, 0
	for _, p := range queue {
		g := a.glyphs[p.r]
		dr, mask, mp, adv, ok := p.face.face.Glyph(fixed.Point26_6{}, p.r)
		if !ok {
			delete(a.glyphs, p.r)
			continue
		}
		g.advance = fixedToFloat(adv) * p.face.scale
		w, h := dr.Dx(), dr.Dy()
		if w == 0 || h == 0 {
			rasters = append(rasters, raster{g: g})
			continue
		}

		// Faces reuse their mask buffer, so copy before the next Glyph call.
		cp := image.NewAlpha(image.Rect(0, 0, w, h))
		for yy := 0; yy < h; yy++ {
			for xx := 0; xx < w; xx++ {
				av := color.AlphaModel.Convert(mask.At(mp.X+xx, mp.Y+yy)).(color.Alpha).A
				v := float32(av) * p.face.mult
				if v > 255 {
					v = 255
				}
				cp.Pix[yy*cp.Stride+xx] = uint8(v)
			}
		}

		if x+w+1 > atlasWidth {
			x = 1
			y += shelf + 1
			shelf = 0
		}
		g.px, g.py, g.pw, g.ph = x, y, w, h
		x += w + 1
		if h > shelf {
			shelf = h
		}

		s := p.face.scale
		g.x0 = float32(dr.Min.X) * s
		g.y0 = a.ascent + float32(dr.Min.Y)*s
		g.x1 = float32(dr.Max.X) * s
		g.y1 = a.ascent + float32(dr.Max.Y)*s
		rasters = append(rasters, raster{g: g, mask: cp})
	}

	height := nextPow2(y + shelf + 1)
	a.pixels = image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	for _, r := range rasters {
		if r.mask == nil {
			continue
		}
		g := r.g
		for yy := 0; yy < g.ph; yy++ {
			dst := a.pixels.Pix[(g.py+yy)*a.pixels.Stride+g.px:]
			copy(dst[:g.pw], r.mask.Pix[yy*r.mask.Stride:])
		}
		g.u0 = float32(g.px) / atlasWidth
		g.v0 = float32(g.py) / float32(height)
		g.u1 = float32(g.px+g.pw) / atlasWidth
		g.v1 = float32(g.py+g.ph) / float32(height)
	}

	a.built = true
	guiLogger.Debug("font atlas built",
		"sources", len(a.sources),
		"glyphs", len(a.glyphs),
		"width", atlasWidth,
		"height", height,
		"size_px", a.sizePixels)
	return nil
}

// TexData returns the single-channel coverage texture.
func (a *FontAtlas) TexData() (pix []byte, width, height int) {
	if a.pixels == nil {
		return nil, 0, 0
	}
	b := a.pixels.Bounds()
	return a.pixels.Pix, b.Dx(), b.Dy()
}

// SetTextureID records the renderer's handle for the uploaded texture.
func (a *FontAtlas) SetTextureID(id uint32) {
	a.texID = id
}

// TextureID implements Font.
func (a *FontAtlas) TextureID() uint32 {
	return a.texID
}

// SizePixels returns the rasterization size of the primary source.
func (a *FontAtlas) SizePixels() float32 {
	return a.sizePixels
}

// GlyphCount returns the number of rasterized code points.
func (a *FontAtlas) GlyphCount() int {
	return len(a.glyphs)
}

// HasGlyph implements Font.
func (a *FontAtlas) HasGlyph(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// LineHeight implements Font.
func (a *FontAtlas) LineHeight(scale float32) float32 {
	return a.lineHeight * scale
}

func (a *FontAtlas) lookup(r rune) *atlasGlyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	if g, ok := a.glyphs['�']; ok {
		return g
	}
	return a.glyphs['?']
}

// MeasureText implements Font. Newlines start a new line.
func (a *FontAtlas) MeasureText(text string, scale float32) Vec2 {
	var w, lineW float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			w = maxf(w, lineW)
			lineW = 0
			lines++
			continue
		}
		if g := a.lookup(r); g != nil {
			lineW += g.advance
		}
	}
	w = maxf(w, lineW)
	return Vec2{X: w * scale, Y: float32(lines) * a.lineHeight * scale}
}

// AppendGlyphQuads implements Font.
func (a *FontAtlas) AppendGlyphQuads(dst []GlyphQuad, text string, x, y, scale float32) []GlyphQuad {
	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += a.lineHeight * scale
			continue
		}
		g := a.lookup(r)
		if g == nil {
			continue
		}
		if g.pw > 0 {
			dst = append(dst, GlyphQuad{
				X0: penX + g.x0*scale, Y0: penY + g.y0*scale,
				X1: penX + g.x1*scale, Y1: penY + g.y1*scale,
				U0: g.u0, V0: g.v0, U1: g.u1, V1: g.v1,
			})
		}
		penX += g.advance * scale
	}
	return dst
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
