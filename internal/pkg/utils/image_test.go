package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	data, ext, err := DecodeBase64Image("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)
	assert.Equal(t, []byte("fake-png-bytes"), data)
}

func TestDecodeBase64Image_UnsupportedPrefix(t *testing.T) {
	_, _, err := DecodeBase64Image("data:image/gif;base64,abcd")
	assert.Error(t, err)
}

func TestDecodeBase64Image_BadPayload(t *testing.T) {
	_, _, err := DecodeBase64Image("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestValidateImageFormat(t *testing.T) {
	assert.NoError(t, ValidateImageFormat(".png", ".jpg,.jpeg,.png"))
	assert.NoError(t, ValidateImageFormat(".JPG", ".jpg,.jpeg,.png"))
	assert.Error(t, ValidateImageFormat(".gif", ".jpg,.jpeg,.png"))
}
