package images

import (
	"crypto/md5"
	"fmt"
	"image"
)

// Checksum generates a deterministic checksum for an image to verify
// idempotency.
//
// Arguments:
// - img: The image to compute a checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum of the straight-alpha pixel data.
func Checksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	nrgba := ToNRGBA(img)
	hash := md5.New()
	hash.Write(nrgba.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
