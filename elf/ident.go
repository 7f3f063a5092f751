package elf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var magic = []byte{0x7F, 0x45, 0x4C, 0x46}

// Offsets within the 16 identification bytes.
const (
	identClass      = 4
	identData       = 5
	identVersion    = 6
	identABI        = 7
	identABIVersion = 8
	identSize       = 16
)

type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	default:
		return "unknown"
	}
}

// wordSize is the encoded size of a word-width field for the class.
func (c Class) wordSize() int {
	if c == Class64 {
		return 8
	}
	return 4
}

type Data uint8

const (
	Data2LSB Data = 1
	Data2MSB Data = 2
)

func (d Data) String() string {
	switch d {
	case Data2LSB:
		return "little endian"
	case Data2MSB:
		return "big endian"
	default:
		return "unknown"
	}
}

// resolveVariant derives the word width and byte order every later structure
// is decoded with from the identification bytes. Unrecognized class or
// encoding values are rejected here instead of leaking into word-size
// resolution.
func resolveVariant(data []byte) (Class, binary.ByteOrder, error) {
	if len(data) < identSize {
		return 0, nil, &BoundsError{Offset: 0, Length: identSize, Size: uint64(len(data))}
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return 0, nil, fmt.Errorf("%w: % x", ErrMagic, data[:len(magic)])
	}
	class := Class(data[identClass])
	switch class {
	case Class32, Class64:
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrClass, data[identClass])
	}
	var order binary.ByteOrder
	switch Data(data[identData]) {
	case Data2LSB:
		order = binary.LittleEndian
	case Data2MSB:
		order = binary.BigEndian
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrEncoding, data[identData])
	}
	return class, order, nil
}
