package elf

// Section is a view over one entry of the section header table. The entry
// describes a second window, the section's content, which Content slices
// from the same shared buffer.
type Section struct {
	view  view
	index int
}

func (s *Section) Index() int {
	return s.index
}

func (s *Section) NameIndex() uint32 {
	return uint32(s.view.read(sectionLayout.name))
}

func (s *Section) Type() SectionType {
	return SectionType(s.view.read(sectionLayout.typ))
}

func (s *Section) Flags() uint64 {
	return s.view.read(sectionLayout.flags)
}

func (s *Section) Addr() uint64 {
	return s.view.read(sectionLayout.addr)
}

func (s *Section) Offset() uint64 {
	return s.view.read(sectionLayout.offset)
}

func (s *Section) Size() uint64 {
	return s.view.read(sectionLayout.size)
}

func (s *Section) Link() uint32 {
	return uint32(s.view.read(sectionLayout.link))
}

func (s *Section) Info() uint32 {
	return uint32(s.view.read(sectionLayout.info))
}

func (s *Section) AddrAlign() uint64 {
	return s.view.read(sectionLayout.addralign)
}

func (s *Section) EntSize() uint64 {
	return s.view.read(sectionLayout.entsize)
}

func (s *Section) SetNameIndex(v uint32) error {
	return s.view.write(sectionLayout.name, uint64(v))
}

func (s *Section) SetType(v SectionType) error {
	return s.view.write(sectionLayout.typ, uint64(v))
}

func (s *Section) SetFlags(v uint64) error {
	return s.view.write(sectionLayout.flags, v)
}

func (s *Section) SetAddr(v uint64) error {
	return s.view.write(sectionLayout.addr, v)
}

func (s *Section) SetOffset(v uint64) error {
	return s.view.write(sectionLayout.offset, v)
}

func (s *Section) SetSize(v uint64) error {
	return s.view.write(sectionLayout.size, v)
}

func (s *Section) SetLink(v uint32) error {
	return s.view.write(sectionLayout.link, uint64(v))
}

func (s *Section) SetInfo(v uint32) error {
	return s.view.write(sectionLayout.info, uint64(v))
}

func (s *Section) SetAddrAlign(v uint64) error {
	return s.view.write(sectionLayout.addralign, v)
}

func (s *Section) SetEntSize(v uint64) error {
	return s.view.write(sectionLayout.entsize, v)
}

// Content returns the section's content window buffer[offset, offset+size).
// The slice aliases the file buffer; writing to it edits the file. NOBITS
// sections occupy no file bytes and yield nil.
func (s *Section) Content() ([]byte, error) {
	if s.Type() == SHT_NOBITS {
		return nil, nil
	}
	v, err := s.view.file.view(s.Offset(), s.Size())
	if err != nil {
		return nil, err
	}
	return v.bytes(), nil
}

// Name resolves the section's name index through the string section the file
// header designates.
func (s *Section) Name() (string, error) {
	f := s.view.file
	strs, err := f.SectionAt(int(f.Header().Shstrndx()))
	if err != nil {
		return "", err
	}
	table, err := strs.Content()
	if err != nil {
		return "", err
	}
	return ResolveName(table, s.NameIndex())
}
