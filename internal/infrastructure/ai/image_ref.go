package ai

import (
	"errors"
	"strings"
)

// errUnsupportedImage la referencia no es una data URL base64 ni una URL http(s).
var errUnsupportedImage = errors.New("AI: referencia de imagen no soportada")

// imageRef imagen a analizar: inline (base64) o remota (URL).
type imageRef struct {
	mimeType string
	data     string // base64 sin prefijo
	url      string
}

func (r imageRef) inline() bool { return r.data != "" }

// parseImageRef acepta "data:<mime>;base64,<datos>" o una URL http(s).
func parseImageRef(ref string) (imageRef, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return imageRef{url: ref}, nil
	}
	if !strings.HasPrefix(ref, "data:") {
		return imageRef{}, errUnsupportedImage
	}
	header, data, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok || data == "" {
		return imageRef{}, errUnsupportedImage
	}
	mime, enc, _ := strings.Cut(header, ";")
	if enc != "base64" || !strings.HasPrefix(mime, "image/") {
		return imageRef{}, errUnsupportedImage
	}
	return imageRef{mimeType: mime, data: data}, nil
}
