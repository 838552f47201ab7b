package examnum

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// WriteQRCode writes a PNG QR image encoding code to path.
func WriteQRCode(path string, code string) error {
	qr, err := qrcode.New(code)
	if err != nil {
		return fmt.Errorf("failed to create qr code: %w", err)
	}

	qrW, err := standard.New(path,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err != nil {
		return fmt.Errorf("failed to create qr code writer: %w", err)
	}

	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		return fmt.Errorf("failed to save qr code: %w", err)
	}

	return nil
}
