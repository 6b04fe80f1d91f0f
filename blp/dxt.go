package blp

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

type dxt1Block struct {
	Color1  uint16
	Color2  uint16
	Indices uint32
}

type dxt5Block struct {
	Alpha   uint64
	Color1  uint16
	Color2  uint16
	Indices uint32
}

func blockCount(width int, height int) (int, int) {
	return (width + 3) >> 2, (height + 3) >> 2
}

func readBlocks[T any](data []byte, width int, height int, blockSize int) ([]T, int, error) {
	horiz, vert := blockCount(width, height)
	n := horiz * vert

	if len(data) < n*blockSize {
		return nil, 0, fmt.Errorf("%w: %d blocks need %d bytes, mip has %d",
			ErrTruncatedTexture, n, n*blockSize, len(data))
	}

	blocks := make([]T, n)
	if err := binary.Read(bytes.NewReader(data[:n*blockSize]), binary.LittleEndian, blocks); err != nil {
		return nil, 0, err
	}

	return blocks, horiz, nil
}

// setPixel writes a block pixel, dropping the ones outside the image.
func setPixel(pixels []warcraft.BGRA, width int, height int, x int, y int, c warcraft.BGRA) {
	if x < width && y < height {
		pixels[y*width+x] = c
	}
}

func processDXT1(data []byte, width int, height int, hasAlpha bool) ([]warcraft.BGRA, error) {
	blocks, horiz, err := readBlocks[dxt1Block](data, width, height, 8)
	if err != nil {
		return nil, err
	}

	pixels := make([]warcraft.BGRA, width*height)

	for i, block := range blocks {
		blockX, blockY := (i%horiz)*4, (i/horiz)*4

		var colors [4]warcraft.BGRA
		processDXTColor(&colors, block.Color1, block.Color2, true)
		if !hasAlpha {
			colors[3].A = 0xFF
		}

		indices := block.Indices
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				setPixel(pixels, width, height, blockX+x, blockY+y, colors[indices&3])
				indices >>= 2
			}
		}
	}

	return pixels, nil
}

func processDXT5(data []byte, width int, height int) ([]warcraft.BGRA, error) {
	blocks, horiz, err := readBlocks[dxt5Block](data, width, height, 16)
	if err != nil {
		return nil, err
	}

	pixels := make([]warcraft.BGRA, width*height)

	for i, block := range blocks {
		blockX, blockY := (i%horiz)*4, (i/horiz)*4

		var colors [4]warcraft.BGRA
		processDXTColor(&colors, block.Color1, block.Color2, false)

		alphas := dxt5Alphas(uint8(block.Alpha), uint8(block.Alpha>>8))
		blockAlpha := block.Alpha >> 16

		indices := block.Indices
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				c := colors[indices&3]
				c.A = alphas[blockAlpha&7]
				setPixel(pixels, width, height, blockX+x, blockY+y, c)
				indices >>= 2
				blockAlpha >>= 3
			}
		}
	}

	return pixels, nil
}

func dxt5Alphas(alpha0 uint8, alpha1 uint8) [8]uint8 {
	var alphas [8]uint8
	alphas[0] = alpha0
	alphas[1] = alpha1

	if alpha0 > alpha1 {
		for i := uint(2); i < 8; i++ {
			alphas[i] = uint8(((8-i)*uint(alpha0) + (i-1)*uint(alpha1)) / 7)
		}
	} else {
		for i := uint(2); i < 6; i++ {
			alphas[i] = uint8(((6-i)*uint(alpha0) + (i-1)*uint(alpha1)) / 5)
		}
		alphas[6] = 0x00
		alphas[7] = 0xFF
	}

	return alphas
}

// processDXTColor expands the two RGB565 endpoints of a block into its palette.
// In DXT1 mode an endpoint order of color1 <= color2 selects the
// three-color palette with a transparent fourth entry.
func processDXTColor(pixel *[4]warcraft.BGRA, color1 uint16, color2 uint16, isDXT1 bool) {
	red1 := uint8((color1 & 0xF800) >> 11)
	green1 := uint8((color1 & 0x07E0) >> 5)
	blue1 := uint8(color1 & 0x001F)
	red2 := uint8((color2 & 0xF800) >> 11)
	green2 := uint8((color2 & 0x07E0) >> 5)
	blue2 := uint8(color2 & 0x001F)

	pixel[0].R = (red1 << 3) | (red1 >> 2)
	pixel[0].G = (green1 << 2) | (green1 >> 4)
	pixel[0].B = (blue1 << 3) | (blue1 >> 2)

	pixel[1].R = (red2 << 3) | (red2 >> 2)
	pixel[1].G = (green2 << 2) | (green2 >> 4)
	pixel[1].B = (blue2 << 3) | (blue2 >> 2)

	if !isDXT1 || color1 > color2 {
		pixel[2].R = uint8((uint16(pixel[0].R)*2 + uint16(pixel[1].R)) / 3)
		pixel[2].G = uint8((uint16(pixel[0].G)*2 + uint16(pixel[1].G)) / 3)
		pixel[2].B = uint8((uint16(pixel[0].B)*2 + uint16(pixel[1].B)) / 3)

		pixel[3].R = uint8((uint16(pixel[0].R) + uint16(pixel[1].R)*2) / 3)
		pixel[3].G = uint8((uint16(pixel[0].G) + uint16(pixel[1].G)*2) / 3)
		pixel[3].B = uint8((uint16(pixel[0].B) + uint16(pixel[1].B)*2) / 3)

		pixel[0].A = 0xFF
		pixel[1].A = 0xFF
		pixel[2].A = 0xFF
		pixel[3].A = 0xFF
	} else {
		pixel[2].R = uint8((uint16(pixel[0].R) + uint16(pixel[1].R)) >> 1)
		pixel[2].G = uint8((uint16(pixel[0].G) + uint16(pixel[1].G)) >> 1)
		pixel[2].B = uint8((uint16(pixel[0].B) + uint16(pixel[1].B)) >> 1)

		pixel[3].R = 0
		pixel[3].G = 0
		pixel[3].B = 0

		pixel[0].A = 0xFF
		pixel[1].A = 0xFF
		pixel[2].A = 0xFF
		pixel[3].A = 0x00
	}
}
