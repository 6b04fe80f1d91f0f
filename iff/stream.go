package iff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ptolstoi/warcraftassets/warcraft"
)

// HeaderSize is the size of a chunk header.
const HeaderSize = 8

// Header precedes every chunk payload in a stream.
type Header struct {
	Signature Signature
	Size      uint32
}

// Split cuts a stream of chunks into raw chunks, in file order.
// Payloads are copied; the result does not alias data.
func Split(data []byte) ([]*Raw, error) {
	r := bytes.NewReader(data)
	var chunks []*Raw

	for r.Len() > 0 {
		offset := len(data) - r.Len()

		if r.Len() < HeaderSize {
			return nil, fmt.Errorf("%w: chunk header at offset %d needs %d bytes, %d left",
				ErrTruncatedBuffer, offset, HeaderSize, r.Len())
		}

		var header Header
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return nil, err
		}

		if int64(header.Size) > int64(r.Len()) {
			return nil, fmt.Errorf("%w: %v chunk at offset %d declares %d bytes, %d left",
				ErrTruncatedBuffer, header.Signature, offset, header.Size, r.Len())
		}

		payload := make([]byte, header.Size)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, err
		}

		chunks = append(chunks, &Raw{Tag: header.Signature, Data: payload})
	}

	return chunks, nil
}

// WriteChunk writes the header and payload of c.
func WriteChunk(w io.Writer, c Chunk, version warcraft.Version) error {
	payload, err := c.Marshal(version)
	if err != nil {
		return fmt.Errorf("%v: %w", c.Signature(), err)
	}

	header := Header{
		Signature: c.Signature(),
		Size:      uint32(len(payload)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	_, err = w.Write(payload)
	return err
}

// MarshalStream serializes chunks back into a stream, in the given order.
func MarshalStream(chunks []Chunk, version warcraft.Version) ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range chunks {
		if err := WriteChunk(&buf, c, version); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
