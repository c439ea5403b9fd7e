package imagebuffer

import "github.com/gogpu/gputypes"

// TextureLayout describes a buffer's byte view for a caller that uploads it
// to a GPU texture. The buffer does no GPU work itself.
type TextureLayout struct {
	Format      gputypes.TextureFormat
	Dimension   gputypes.TextureDimension
	Usage       gputypes.TextureUsage
	Size        gputypes.Extent3D
	BytesPerRow uint32

	// Data aliases the buffer's bytes.
	Data []byte
}

// TextureLayout returns the layout of the byte view: RGBA8 unorm, rows of
// Width()*4 bytes, top row first.
func (b *Buffer) TextureLayout() TextureLayout {
	//nolint:gosec // G115: dimensions are positive ints validated at construction
	return TextureLayout{
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Dimension: gputypes.TextureDimension2D,
		Usage:     gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
		Size: gputypes.Extent3D{
			Width:              uint32(b.width),
			Height:             uint32(b.height),
			DepthOrArrayLayers: 1,
		},
		BytesPerRow: uint32(b.width * NumComponents),
		Data:        b.pix,
	}
}
