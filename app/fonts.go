package app

import (
	"fmt"

	"github.com/hajimehoshi/bitmapfont/v4"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/talanapp/talan"
)

// BaseFontSize is the logical font size in pixels at scale 1.
const BaseFontSize = 13

// bitmapFaceSize is the native pixel height of the bitmap face's glyphs.
const bitmapFaceSize = 12

// DefaultFontSources returns the embedded Go Regular face, then a 12px
// bitmap face for kana and kanji, then the built-in 7x13 face for
// anything both lack. The first two share the Japanese glyph ranges.
func DefaultFontSources(pixelSize float32) []gui.FontSource {
	return []gui.FontSource{
		{
			Name: "goregular",
			Data: goregular.TTF,
			Config: gui.FontConfig{
				SizePixels:         pixelSize,
				RasterizerMultiply: 1.75,
				GlyphRanges:        gui.GlyphRangesJapanese(),
			},
		},
		{
			Name: "bitmap-ja",
			Face: bitmapfont.Face,
			Config: gui.FontConfig{
				SizePixels:  pixelSize,
				FaceSize:    bitmapFaceSize,
				GlyphRanges: gui.GlyphRangesJapanese(),
			},
		},
		{
			Name:    "default",
			Default: true,
			Config:  gui.FontConfig{SizePixels: pixelSize},
		},
	}
}

// SetupFonts rasterizes the atlas at BaseFontSize*scale pixels and sets
// IO.FontGlobalScale to 1/scale so text keeps its logical size.
// It returns the raster pixel size. The atlas can be set up only once;
// later calls return gui.ErrAtlasBuilt.
func SetupFonts(ctx *gui.Context, scale float32, sources FontSourcesFunc) (float32, error) {
	atlas := ctx.Fonts()
	if atlas.Built() {
		return 0, gui.ErrAtlasBuilt
	}
	if scale <= 0 {
		scale = 1
	}
	if sources == nil {
		sources = DefaultFontSources
	}
	pixelSize := BaseFontSize * scale
	if err := atlas.AddFont(sources(pixelSize)...); err != nil {
		return 0, fmt.Errorf("app: add fonts: %w", err)
	}
	if err := atlas.Build(); err != nil {
		return 0, fmt.Errorf("app: build font atlas: %w", err)
	}
	ctx.IO().FontGlobalScale = 1 / scale
	return pixelSize, nil
}

// RebuildFonts rasterizes a fresh atlas for a new scale factor and swaps
// it into ctx between frames. The caller re-uploads the texture.
func RebuildFonts(ctx *gui.Context, scale float32, sources FontSourcesFunc) (float32, error) {
	if scale <= 0 {
		scale = 1
	}
	if sources == nil {
		sources = DefaultFontSources
	}
	pixelSize := BaseFontSize * scale
	atlas := gui.NewFontAtlas()
	if err := atlas.AddFont(sources(pixelSize)...); err != nil {
		return 0, fmt.Errorf("app: add fonts: %w", err)
	}
	if err := atlas.Build(); err != nil {
		return 0, fmt.Errorf("app: build font atlas: %w", err)
	}
	if err := ctx.SetFonts(atlas); err != nil {
		return 0, fmt.Errorf("app: swap font atlas: %w", err)
	}
	ctx.IO().FontGlobalScale = 1 / scale
	return pixelSize, nil
}
