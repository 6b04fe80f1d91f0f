package iff

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ReadFixed decodes a fixed-size payload into v, which must point to a value
// made only of fixed-size fields.
func ReadFixed(sig Signature, data []byte, v interface{}) error {
	if err := CheckSize(sig, data, binary.Size(v)); err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(data), binary.LittleEndian, v)
}

// WriteFixed encodes a fixed-size value.
func WriteFixed(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadElements decodes a payload made of consecutive fixed-size records.
func ReadElements[T any](sig Signature, data []byte) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return nil, fmt.Errorf("%v: element type %T has no fixed size", sig, zero)
	}

	n, err := ElementCount(sig, data, size)
	if err != nil {
		return nil, err
	}

	records := make([]T, n)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, records); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteElements encodes consecutive fixed-size records.
func WriteElements[T any](records []T) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}
	return WriteFixed(records)
}
