package blp

import (
	"fmt"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

func processPalette(data []byte, palette *[256]warcraft.BGRA, width int, height int, alphaDepth uint8) ([]warcraft.BGRA, error) {
	n := width * height

	var alphaSize int
	switch alphaDepth {
	case 0:
	case 1:
		alphaSize = (n + 7) / 8
	case 4:
		alphaSize = (n + 1) / 2
	case 8:
		alphaSize = n
	default:
		return nil, fmt.Errorf("%w: alpha depth %d", ErrUnsupportedTexture, alphaDepth)
	}

	if len(data) < n+alphaSize {
		return nil, fmt.Errorf("%w: palette mip needs %d bytes, has %d", ErrTruncatedTexture, n+alphaSize, len(data))
	}

	alpha := data[n : n+alphaSize]
	pixels := make([]warcraft.BGRA, n)

	for i := 0; i < n; i++ {
		c := palette[data[i]]

		switch alphaDepth {
		case 0:
			c.A = 0xFF

		case 1:
			if alpha[i/8]&(1<<(i%8)) != 0 {
				c.A = 0xFF
			} else {
				c.A = 0
			}

		case 4:
			v := (alpha[i/2] >> (4 * (i % 2))) & 0xF
			c.A = v<<4 | v

		case 8:
			c.A = alpha[i]
		}

		pixels[i] = c
	}

	return pixels, nil
}

func processUncompressed(data []byte, width int, height int) ([]warcraft.BGRA, error) {
	n := width * height
	if len(data) < n*4 {
		return nil, fmt.Errorf("%w: raw mip needs %d bytes, has %d", ErrTruncatedTexture, n*4, len(data))
	}

	pixels := make([]warcraft.BGRA, n)
	for i := range pixels {
		pixels[i] = warcraft.BGRA{B: data[i*4], G: data[i*4+1], R: data[i*4+2], A: data[i*4+3]}
	}

	return pixels, nil
}
