package graphics

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"kernelquest/internal/logger"
	"kernelquest/internal/render"
	ebitenrender "kernelquest/internal/render/ebiten"
)

// Sprite subdirectories searched in priority order.
var searchDirs = []string{"characters", "mobs", "ui"}

// SpriteManager loads PNG sprites on first use and caches hits and misses.
type SpriteManager struct {
	root    string
	sprites map[string]render.Texture
	missing map[string]bool
	decode  func(path string) (*ebiten.Image, error)
	log     *zap.Logger
}

// NewSpriteManager searches root/sprites/{characters,mobs,ui}.
func NewSpriteManager(root string) *SpriteManager {
	return &SpriteManager{
		root:    root,
		sprites: make(map[string]render.Texture),
		missing: make(map[string]bool),
		decode:  decodePNG,
		log:     logger.Named("sprites"),
	}
}

// GetSprite returns the named sprite, or nil when no file exists. A nil
// result is cached and logged once; callers skip drawing it.
func (sm *SpriteManager) GetSprite(name string) render.Texture {
	if name == "" {
		return nil
	}
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}
	if sm.missing[name] {
		return nil
	}

	for _, dir := range searchDirs {
		path := filepath.Join(sm.root, "sprites", dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := sm.decode(path)
		if err != nil {
			sm.log.Warn("failed to decode sprite", zap.String("sprite", name), zap.Error(err))
			break
		}
		tex := ebitenrender.NewTexture(img)
		sm.sprites[name] = tex
		return tex
	}

	sm.missing[name] = true
	sm.log.Warn("sprite not found, skipping", zap.String("sprite", name))
	return nil
}

func decodePNG(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
