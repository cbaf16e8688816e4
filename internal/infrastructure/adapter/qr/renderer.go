package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// Size limits in pixels
const (
	MinSize = 64
	MaxSize = 1024
)

// Renderer implements external.QRRenderer with skip2/go-qrcode
type Renderer struct {
	level qrcode.RecoveryLevel
}

// NewRenderer creates a renderer using medium error correction
func NewRenderer() *Renderer {
	return &Renderer{level: qrcode.Medium}
}

// RenderPNG encodes content into a square PNG of size pixels
func (r *Renderer) RenderPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr content is empty")
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("qr size %d outside [%d, %d]", size, MinSize, MaxSize)
	}

	png, err := qrcode.Encode(content, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
