package hovercode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultPreviewSize is the preview width in pixels used when size is zero.
// It matches the default size of codes rendered by Hovercode.
const DefaultPreviewSize = 220

// RenderPreview renders content as a PNG QR code locally, without calling
// the API. It shows what a static code created with the same qr_data will
// encode; styling such as patterns, frames and logos is not applied.
//
// A zero size uses DefaultPreviewSize and an empty level uses
// ErrorCorrectionQ.
func RenderPreview(content string, size int, level ErrorCorrection) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationError("preview content must be a non-empty string.", nil)
	}
	if size < 0 {
		return nil, validationError("preview size must not be negative.", map[string]any{"size": size})
	}
	if size == 0 {
		size = DefaultPreviewSize
	}

	recovery, err := recoveryLevel(level)
	if err != nil {
		return nil, err
	}

	png, err := skipqrcode.Encode(content, recovery, size)
	if err != nil {
		return nil, errors.Join(validationError("failed to render QR preview.", nil), err)
	}
	return png, nil
}

// RenderPreviewDataURI returns RenderPreview's PNG as a data URI for an
// <img> tag.
func RenderPreviewDataURI(content string, size int, level ErrorCorrection) (string, error) {
	png, err := RenderPreview(content, size, level)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func recoveryLevel(level ErrorCorrection) (skipqrcode.RecoveryLevel, error) {
	switch level {
	case ErrorCorrectionL:
		return skipqrcode.Low, nil
	case ErrorCorrectionM:
		return skipqrcode.Medium, nil
	case ErrorCorrectionQ, "":
		return skipqrcode.High, nil
	case ErrorCorrectionH:
		return skipqrcode.Highest, nil
	default:
		return 0, validationError("unknown error correction level "+enumString(level)+".",
			map[string]any{"error_correction": enumString(level)})
	}
}
