// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/gomono"
)

// hudFontURL is the name the embedded HUD font is registered under
const hudFontURL = "asteroids/gomono.ttf"

// AssetManager handles loading and managing game assets. The game draws
// everything from vector outlines, so the only file asset is the HUD font.
type AssetManager struct {
	fonts map[float64]*common.Font
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{fonts: make(map[float64]*common.Font)}
}

// LoadAssets registers the embedded font with engo's file loader.
func (am *AssetManager) LoadAssets() error {
	if err := engo.Files.LoadReaderData(hudFontURL, bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load HUD font: %w", err)
	}
	return nil
}

// Font returns the HUD font at size, preparing it on first use.
func (am *AssetManager) Font(size float64) (*common.Font, error) {
	if font, ok := am.fonts[size]; ok {
		return font, nil
	}

	font := &common.Font{
		URL:  hudFontURL,
		FG:   color.White,
		Size: size,
	}
	if err := font.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("prepare HUD font at size %v: %w", size, err)
	}
	am.fonts[size] = font
	return font, nil
}
