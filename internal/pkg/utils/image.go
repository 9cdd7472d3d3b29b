package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var base64ImagePrefixes = map[string]string{
	"data:image/jpeg;base64,": ".jpeg",
	"data:image/jpg;base64,":  ".jpg",
	"data:image/png;base64,":  ".png",
}

// DecodeBase64Image decodes a data-URI encoded image into raw bytes and its
// file extension.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	for prefix, ext := range base64ImagePrefixes {
		if strings.HasPrefix(encoded, prefix) {
			data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(encoded, prefix))
			if err != nil {
				return nil, "", err
			}
			return data, ext, nil
		}
	}
	return nil, "", fmt.Errorf("unsupported image data uri")
}

func ValidateImageFormat(ext, allowedFormats string) error {
	for _, allowed := range strings.Split(allowedFormats, ",") {
		if strings.EqualFold(strings.TrimSpace(allowed), ext) {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", ext)
}
