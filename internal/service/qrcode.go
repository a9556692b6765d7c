package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(itemID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to an item's detail page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(itemID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/menu/%d", g.BaseURL, itemID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
