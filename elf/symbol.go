package elf

// Symbol is a view over one entry of a symbol table section. The info byte
// packs the symbol type in its low nibble and the binding in its high one.
type Symbol struct {
	view    view
	section *Section
	index   int
}

// Symbols extracts the symbol records of a SYMTAB or DYNSYM section.
func (s *Section) Symbols() ([]*Symbol, error) {
	if err := checkKind(s, SymbolRecord); err != nil {
		return nil, err
	}
	return records(s, symbolFields, func(v view, i int) *Symbol {
		return &Symbol{view: v, section: s, index: i}
	})
}

func (s *Symbol) Index() int {
	return s.index
}

func (s *Symbol) NameIndex() uint32 {
	return uint32(s.view.read(symbolLayout.name))
}

func (s *Symbol) Value() uint64 {
	return s.view.read(symbolLayout.value)
}

func (s *Symbol) Size() uint64 {
	return s.view.read(symbolLayout.size)
}

func (s *Symbol) Info() uint8 {
	return uint8(s.view.read(symbolLayout.info))
}

func (s *Symbol) Other() uint8 {
	return uint8(s.view.read(symbolLayout.other))
}

func (s *Symbol) Shndx() uint16 {
	return uint16(s.view.read(symbolLayout.shndx))
}

func (s *Symbol) Type() SymbolType {
	return SymbolType(s.Info() & 0xF)
}

func (s *Symbol) Binding() SymbolBinding {
	return SymbolBinding(s.Info() >> 4)
}

func (s *Symbol) Visibility() SymbolVisibility {
	return SymbolVisibility(s.Other() & 0x3)
}

// Absolute reports whether the symbol carries the absolute section index
// sentinel instead of referring to a real section.
func (s *Symbol) Absolute() bool {
	return s.Shndx() == SHN_ABS
}

func (s *Symbol) SetNameIndex(v uint32) error {
	return s.view.write(symbolLayout.name, uint64(v))
}

func (s *Symbol) SetValue(v uint64) error {
	return s.view.write(symbolLayout.value, v)
}

func (s *Symbol) SetSize(v uint64) error {
	return s.view.write(symbolLayout.size, v)
}

func (s *Symbol) SetInfo(v uint8) error {
	return s.view.write(symbolLayout.info, uint64(v))
}

func (s *Symbol) SetOther(v uint8) error {
	return s.view.write(symbolLayout.other, uint64(v))
}

func (s *Symbol) SetShndx(v uint16) error {
	return s.view.write(symbolLayout.shndx, uint64(v))
}

func (s *Symbol) SetType(v SymbolType) error {
	return s.SetInfo(s.Info()&0xF0 | uint8(v)&0xF)
}

func (s *Symbol) SetBinding(v SymbolBinding) error {
	return s.SetInfo(uint8(v)<<4 | s.Info()&0xF)
}

// Name resolves the symbol's name index through the string table section the
// symbol table links to.
func (s *Symbol) Name() (string, error) {
	table, err := s.section.linkedStrings()
	if err != nil {
		return "", err
	}
	return ResolveName(table, s.NameIndex())
}
