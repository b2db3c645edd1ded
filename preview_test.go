package hovercode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	levels := []ErrorCorrection{"", ErrorCorrectionL, ErrorCorrectionM, ErrorCorrectionQ, ErrorCorrectionH}

	for _, level := range levels {
		t.Run("level_"+string(level), func(t *testing.T) {
			data, err := RenderPreview("https://example.com", 128, level)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, 128, img.Bounds().Dx())
		})
	}
}

func TestRenderPreview_DefaultSize(t *testing.T) {
	data, err := RenderPreview("hello", 0, ErrorCorrectionM)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultPreviewSize, img.Bounds().Dx())
}

func TestRenderPreview_Invalid(t *testing.T) {
	_, err := RenderPreview("   ", 100, ErrorCorrectionM)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RenderPreview("hello", -1, ErrorCorrectionM)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = RenderPreview("hello", 100, ErrorCorrection("Z"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRenderPreviewDataURI(t *testing.T) {
	uri, err := RenderPreviewDataURI("https://example.com", 64, ErrorCorrectionL)
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}
