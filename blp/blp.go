// Package blp decodes BLP2 textures, the format material textures are stored in.
package blp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	imageColor "image/color"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

// ErrUnsupportedTexture is returned for encodings that cannot be decoded.
var ErrUnsupportedTexture = errors.New("unsupported texture")

// ErrTruncatedTexture is returned when mip data lies outside the file.
var ErrTruncatedTexture = errors.New("truncated texture")

// Magic is the first four bytes of a BLP2 file.
const Magic = "BLP2"

// HeaderSize is the size of the header including the palette.
const HeaderSize = 1172

// Compression is the pixel encoding of a texture.
type Compression uint8

// Compressions.
const (
	CompressionPalette      Compression = 1
	CompressionDXT          Compression = 2
	CompressionUncompressed Compression = 3
)

// AlphaType selects the DXT variant of a DXT-compressed texture.
type AlphaType uint8

// Alpha types.
const (
	AlphaTypeDXT1 AlphaType = 0
	AlphaTypeDXT3 AlphaType = 1
	AlphaTypeDXT5 AlphaType = 7
)

// Header is the header of a BLP2 file.
type Header struct {
	Magic       [4]byte
	Type        uint32
	Compression Compression
	AlphaDepth  uint8
	AlphaType   AlphaType
	HasMips     uint8
	Width       uint32
	Height      uint32
	MipOffsets  [16]uint32
	MipSizes    [16]uint32
	Palette     [256]warcraft.BGRA
}

// DecodeHeader decodes the header of a BLP2 file.
func DecodeHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncatedTexture, len(data), HeaderSize)
	}

	h := &Header{}
	if err := binary.Read(bytes.NewReader(data[:HeaderSize]), binary.LittleEndian, h); err != nil {
		return nil, err
	}

	if string(h.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: unknown format: %q", ErrUnsupportedTexture, h.Magic[:])
	}

	if h.Width == 0 || h.Height == 0 || h.Width > 8192 || h.Height > 8192 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrUnsupportedTexture, h.Width, h.Height)
	}

	return h, nil
}

// Decode decodes the largest mip level of a BLP2 file.
func Decode(data []byte) (image.Image, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	start, size := uint64(h.MipOffsets[0]), uint64(h.MipSizes[0])
	if start+size > uint64(len(data)) {
		return nil, fmt.Errorf("%w: mip 0 ends at %d, file is %d bytes", ErrTruncatedTexture, start+size, len(data))
	}
	mip := data[start : start+size]

	width, height := int(h.Width), int(h.Height)

	var pixels []warcraft.BGRA

	switch h.Compression {
	case CompressionDXT:
		switch h.AlphaType {
		case AlphaTypeDXT1:
			pixels, err = processDXT1(mip, width, height, h.AlphaDepth != 0)

		case AlphaTypeDXT5:
			pixels, err = processDXT5(mip, width, height)

		default:
			return nil, fmt.Errorf("%w: alpha type %d", ErrUnsupportedTexture, h.AlphaType)
		}

	case CompressionPalette:
		pixels, err = processPalette(mip, &h.Palette, width, height, h.AlphaDepth)

	case CompressionUncompressed:
		pixels, err = processUncompressed(mip, width, height)

	default:
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupportedTexture, h.Compression)
	}
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := pixels[y*width+x]
			img.SetNRGBA(x, y, imageColor.NRGBA{
				R: color.R,
				G: color.G,
				B: color.B,
				A: color.A,
			})
		}
	}

	return img, nil
}
