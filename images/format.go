package images

// ImageFormat represents supported image formats.
type ImageFormat string

const (
	// FormatPNG is the PNG image format, the only format the normalizer
	// reads and writes.
	FormatPNG ImageFormat = "png"
)

// Ext returns the file extension for the format, including the leading dot.
func (f ImageFormat) Ext() string {
	return "." + string(f)
}
