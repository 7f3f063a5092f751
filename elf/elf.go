// Package elf decodes ELF images into mutable, typed views over one shared
// byte buffer. Every element derived from a file reads and writes the file's
// buffer directly, so the buffer is the authoritative encoded form at all
// times; there is no separate serialization step.
package elf

import (
	"encoding/binary"
	"fmt"
	"os"
)

type File struct {
	data  []byte
	class Class
	order binary.ByteOrder
	hdr   Header
}

// Decode interprets data as a complete ELF image. The class and byte order
// are resolved once from the identification bytes and shared by every view
// derived from the returned file. The buffer is retained, not copied: edits
// made through the file show up in data.
func Decode(data []byte) (*File, error) {
	class, order, err := resolveVariant(data)
	if err != nil {
		return nil, err
	}
	f := &File{data: data, class: class, order: order}
	v, err := f.view(0, uint64(layoutSize(headerFields, class)))
	if err != nil {
		return nil, err
	}
	f.hdr = Header{view: v}
	return f, nil
}

func Open(file string) (*File, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (f *File) Class() Class {
	return f.class
}

func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// Bytes returns the live buffer, not a copy.
func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) Header() *Header {
	return &f.hdr
}

// Sections walks the section header table described by the file header. The
// table is re-read on every call so header edits take effect immediately.
func (f *File) Sections() ([]*Section, error) {
	h := f.Header()
	off := h.Shoff()
	if off == 0 {
		return nil, nil
	}
	return walkTable(f, off, uint64(h.Shentsize()), uint64(h.Shnum()), sectionFields, func(v view, i int) *Section {
		return &Section{view: v, index: i}
	})
}

// Programs walks the program header table described by the file header.
func (f *File) Programs() ([]*Program, error) {
	h := f.Header()
	off := h.Phoff()
	if off == 0 {
		return nil, nil
	}
	return walkTable(f, off, uint64(h.Phentsize()), uint64(h.Phnum()), programFields, func(v view, i int) *Program {
		return &Program{view: v, index: i}
	})
}

// SectionAt returns the section at index i of the section header table.
func (f *File) SectionAt(i int) (*Section, error) {
	h := f.Header()
	if i < 0 || i >= int(h.Shnum()) {
		return nil, fmt.Errorf("elf: no section at index %d", i)
	}
	ent := uint64(h.Shentsize())
	if min := layoutSize(sectionFields, f.class); ent < uint64(min) {
		return nil, fmt.Errorf("elf: entry size %d below %d byte minimum", ent, min)
	}
	v, err := f.view(h.Shoff()+uint64(i)*ent, ent)
	if err != nil {
		return nil, err
	}
	return &Section{view: v, index: i}, nil
}

// Section returns the first section whose resolved name matches.
func (f *File) Section(name string) (*Section, error) {
	list, err := f.Sections()
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		n, err := s.Name()
		if err != nil {
			continue
		}
		if n == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("elf: no section named %s", name)
}

// Save writes the buffer back to disk. Since all edits are applied in place
// there is nothing to re-encode.
func (f *File) Save(file string) error {
	return os.WriteFile(file, f.data, 0644)
}
