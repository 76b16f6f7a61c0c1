package constants

import "strings"

// AllowedExtensions holds the image extensions the capture pipeline accepts.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
	"heif": {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsHEICExt reports whether the (normalized) extension is a HEIC/HEIF variant.
func IsHEICExt(ext string) bool {
	switch NormalizeExt(ext) {
	case "heic", "heif", "heics", "heifs":
		return true
	}
	return false
}

// IsImageExt reports whether the extension is one the pipeline can OCR.
func IsImageExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
