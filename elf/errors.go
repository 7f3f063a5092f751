package elf

import (
	"errors"
	"fmt"
)

var (
	ErrMagic        = errors.New("elf: invalid magic")
	ErrClass        = errors.New("elf: unknown class")
	ErrEncoding     = errors.New("elf: unknown data encoding")
	ErrNoName       = errors.New("elf: name index outside string table")
	ErrUnterminated = errors.New("elf: unterminated name")
)

// BoundsError reports a computed window that falls outside the file buffer.
type BoundsError struct {
	Offset uint64
	Length uint64
	Size   uint64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("elf: %d byte(s) at offset %#x outside buffer of %d byte(s)", e.Length, e.Offset, e.Size)
}

// RangeError reports a write whose value does not fit the encoded width of
// the target field.
type RangeError struct {
	Field string
	Value uint64
	Bits  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("elf: value %#x overflows %d-bit field %s", e.Value, e.Bits, e.Field)
}

// RecordTypeError reports an extraction of a record kind from a section
// whose type does not hold that kind.
type RecordTypeError struct {
	Kind RecordKind
	Type SectionType
}

func (e *RecordTypeError) Error() string {
	return fmt.Sprintf("elf: section type %s does not hold %s records", e.Type, e.Kind)
}
