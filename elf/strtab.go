package elf

import (
	"bytes"
	"fmt"
)

// ResolveName treats table as a sequence of NUL-terminated strings and
// returns the one starting at index. An index beyond the table is a name
// error; reaching the table boundary without a terminator is reported
// separately so callers can tell a bad index from a truncated table.
func ResolveName(table []byte, index uint32) (string, error) {
	if uint64(index) > uint64(len(table)) {
		return "", fmt.Errorf("%w: %d", ErrNoName, index)
	}
	i := bytes.IndexByte(table[index:], 0)
	if i < 0 {
		return "", fmt.Errorf("%w at index %d", ErrUnterminated, index)
	}
	return string(table[index : int(index)+i]), nil
}

// Strings splits a string table section into its strings, leading empty
// string included.
func (s *Section) Strings() ([]string, error) {
	if s.Type() != SHT_STRTAB {
		return nil, fmt.Errorf("elf: section type %s is not a string table", s.Type())
	}
	table, err := s.Content()
	if err != nil {
		return nil, err
	}
	var (
		list   []string
		offset int
	)
	for offset < len(table) {
		x := bytes.IndexByte(table[offset:], 0)
		if x < 0 {
			return nil, fmt.Errorf("%w at index %d", ErrUnterminated, offset)
		}
		list = append(list, string(table[offset:offset+x]))
		offset += x + 1
	}
	return list, nil
}

// linkedStrings returns the content of the string table section linked from s,
// used to resolve symbol names.
func (s *Section) linkedStrings() ([]byte, error) {
	strs, err := s.view.file.SectionAt(int(s.Link()))
	if err != nil {
		return nil, err
	}
	return strs.Content()
}
