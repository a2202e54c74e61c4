package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegHead = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pngHead  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gifHead  = []byte("GIF89a")
	mp4Head  = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
	htmlHead = []byte("<!DOCTYPE html><html><body>hi</body></html>")
)

func TestValidateMediaBySniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		size     int64
		head     []byte
		wantKind string
		wantMime string
	}{
		{"jpeg", "photo.jpg", 1024, jpegHead, KindImage, "image/jpeg"},
		{"jpeg uppercase ext", "PHOTO.JPG", 1024, jpegHead, KindImage, "image/jpeg"},
		{"png", "shot.png", 2048, pngHead, KindImage, "image/png"},
		{"gif", "loop.gif", 2048, gifHead, KindImage, "image/gif"},
		{"mp4", "clip.mp4", 4096, mp4Head, KindVideo, "video/mp4"},
		{"mov sniffed as octet-stream", "clip.mov", 4096, []byte{0x00, 0x01, 0x02, 0x03}, KindVideo, "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, mime, err := ValidateMediaBySniff(tt.filename, tt.size, tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMime, mime)
		})
	}
}

func TestValidateMediaBySniffRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		size     int64
		head     []byte
	}{
		{"unsupported extension", "run.exe", 1024, jpegHead},
		{"svg extension", "vector.svg", 1024, []byte("<svg xmlns=")},
		{"html masquerading as image", "page.jpg", 1024, htmlHead},
		{"plain text masquerading as image", "note.png", 1024, []byte("hello world, this is text")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateMediaBySniff(tt.filename, tt.size, tt.head)
			assert.Error(t, err)
		})
	}
}

func TestValidateMediaBySniffSizeCap(t *testing.T) {
	t.Parallel()

	_, _, err := ValidateMediaBySniff("big.jpg", MaxMediaBytes+1, jpegHead)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, _, err = ValidateMediaBySniff("fits.jpg", MaxMediaBytes, jpegHead)
	assert.NoError(t, err)
}
