package util

import (
	"net/http"
)

// SniffContentType detects the media type from the leading bytes instead
// of trusting the client-supplied header.
func SniffContentType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
