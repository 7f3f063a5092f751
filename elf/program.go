package elf

// Program is a view over one entry of the program header table.
type Program struct {
	view  view
	index int
}

func (p *Program) Index() int {
	return p.index
}

func (p *Program) Type() ProgramType {
	return ProgramType(p.view.read(programLayout.typ))
}

func (p *Program) Flags() uint32 {
	return uint32(p.view.read(programLayout.flags))
}

func (p *Program) Offset() uint64 {
	return p.view.read(programLayout.offset)
}

func (p *Program) Vaddr() uint64 {
	return p.view.read(programLayout.vaddr)
}

func (p *Program) Paddr() uint64 {
	return p.view.read(programLayout.paddr)
}

func (p *Program) Filesz() uint64 {
	return p.view.read(programLayout.filesz)
}

func (p *Program) Memsz() uint64 {
	return p.view.read(programLayout.memsz)
}

func (p *Program) Align() uint64 {
	return p.view.read(programLayout.align)
}

func (p *Program) SetType(v ProgramType) error {
	return p.view.write(programLayout.typ, uint64(v))
}

func (p *Program) SetFlags(v uint32) error {
	return p.view.write(programLayout.flags, uint64(v))
}

func (p *Program) SetOffset(v uint64) error {
	return p.view.write(programLayout.offset, v)
}

func (p *Program) SetVaddr(v uint64) error {
	return p.view.write(programLayout.vaddr, v)
}

func (p *Program) SetPaddr(v uint64) error {
	return p.view.write(programLayout.paddr, v)
}

func (p *Program) SetFilesz(v uint64) error {
	return p.view.write(programLayout.filesz, v)
}

func (p *Program) SetMemsz(v uint64) error {
	return p.view.write(programLayout.memsz, v)
}

func (p *Program) SetAlign(v uint64) error {
	return p.view.write(programLayout.align, v)
}

// Content returns the segment's window buffer[offset, offset+filesz).
func (p *Program) Content() ([]byte, error) {
	v, err := p.view.file.view(p.Offset(), p.Filesz())
	if err != nil {
		return nil, err
	}
	return v.bytes(), nil
}
