package elf

import "errors"

var ErrNoAddend = errors.New("elf: relocation has no addend")

// Relocation is a view over one entry of a REL or RELA section. Whether the
// entry carries an addend is fixed once, by the type of the section it was
// extracted from, not re-derived per record.
type Relocation struct {
	view   view
	addend bool
	index  int
}

// Relocations extracts the relocation records of a REL or RELA section.
func (s *Section) Relocations() ([]*Relocation, error) {
	if err := checkKind(s, RelocationRecord); err != nil {
		return nil, err
	}
	var (
		addend = s.Type() == SHT_RELA
		fields = relFields
	)
	if addend {
		fields = relaFields
	}
	return records(s, fields, func(v view, i int) *Relocation {
		return &Relocation{view: v, addend: addend, index: i}
	})
}

func (r *Relocation) Index() int {
	return r.index
}

func (r *Relocation) Offset() uint64 {
	return r.view.read(relocationLayout.offset)
}

func (r *Relocation) Info() uint64 {
	return r.view.read(relocationLayout.info)
}

func (r *Relocation) HasAddend() bool {
	return r.addend
}

func (r *Relocation) Addend() (int64, error) {
	if !r.addend {
		return 0, ErrNoAddend
	}
	v := r.view.read(relocationLayout.addend)
	if r.view.file.class == Class32 {
		return int64(int32(v)), nil
	}
	return int64(v), nil
}

// SymbolIndex unpacks the symbol table index from the info field; the split
// point differs between the two classes.
func (r *Relocation) SymbolIndex() uint32 {
	if r.view.file.class == Class32 {
		return uint32(r.Info() >> 8)
	}
	return uint32(r.Info() >> 32)
}

// Type unpacks the machine-specific relocation type from the info field.
func (r *Relocation) Type() uint32 {
	if r.view.file.class == Class32 {
		return uint32(r.Info() & 0xFF)
	}
	return uint32(r.Info() & 0xFFFFFFFF)
}

func (r *Relocation) SetOffset(v uint64) error {
	return r.view.write(relocationLayout.offset, v)
}

func (r *Relocation) SetInfo(v uint64) error {
	return r.view.write(relocationLayout.info, v)
}

func (r *Relocation) SetAddend(v int64) error {
	if !r.addend {
		return ErrNoAddend
	}
	if r.view.file.class == Class32 {
		return r.view.write(relocationLayout.addend, uint64(uint32(v)))
	}
	return r.view.write(relocationLayout.addend, uint64(v))
}
