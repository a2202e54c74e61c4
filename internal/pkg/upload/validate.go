package upload

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxMediaBytes caps a single uploaded attachment.
const MaxMediaBytes = 50 * 1024 * 1024

const (
	KindImage = "image"
	KindVideo = "video"
)

var ErrTooLarge = errors.New("첨부 파일은 50MB를 넘을 수 없습니다")

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	// SVG intentionally excluded due to XSS risk without sanitization
}

var allowedVideoExt = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

var allowedMime = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/bmp":       true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

// ValidateMediaBySniff checks the filename extension, the declared size and
// the first bytes (head) against the attachment whitelist. It returns the
// media kind ("image" or "video") and the detected mime, or an error.
func ValidateMediaBySniff(filename string, size int64, head []byte) (string, string, error) {
	if size > MaxMediaBytes {
		return "", "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filename))
	kind := ""
	switch {
	case allowedImageExt[ext]:
		kind = KindImage
	case allowedVideoExt[ext]:
		kind = KindVideo
	default:
		return "", "", errors.New("지원하지 않는 파일 형식입니다 (이미지: JPG, PNG, GIF, WEBP, BMP / 영상: MP4, WEBM, MOV)")
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", "", errors.New("HTML 파일은 업로드할 수 없습니다")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", "", errors.New("SVG/XML 파일은 업로드할 수 없습니다")
	}

	// Some containers (e.g. MOV) may sniff as octet-stream depending on Go
	// version; allow by extension in that case.
	if detected == "application/octet-stream" {
		return kind, detected, nil
	}

	if allowedMime[detected] {
		return kind, detected, nil
	}

	return "", "", errors.New("지원하지 않는 파일 형식입니다")
}
