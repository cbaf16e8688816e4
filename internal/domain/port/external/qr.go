package external

// QRRenderer encodes content as a PNG QR code
type QRRenderer interface {
	RenderPNG(content string, size int) ([]byte, error)
}
