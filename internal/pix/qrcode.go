package pix

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize é o lado da imagem em pixels
const DefaultQRSize = 256

// QRCodePNG renderiza o payload como PNG e devolve um data URL base64
func QRCodePNG(payload string, size int) (string, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("falha ao criar QR code: %w", err)
	}

	pngBytes, err := qr.PNG(size)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar PNG: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}
