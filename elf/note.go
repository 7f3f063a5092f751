package elf

// Note is a view over one entry of a NOTE section: three word-width length
// and type fields followed by the name and description payloads.
type Note struct {
	view  view
	index int
}

// Notes extracts the note records of a NOTE section.
func (s *Section) Notes() ([]*Note, error) {
	if err := checkKind(s, NoteRecord); err != nil {
		return nil, err
	}
	return records(s, noteFields, func(v view, i int) *Note {
		return &Note{view: v, index: i}
	})
}

func (n *Note) Index() int {
	return n.index
}

func (n *Note) NameSize() uint64 {
	return n.view.read(noteLayout.namesz)
}

func (n *Note) DescSize() uint64 {
	return n.view.read(noteLayout.descsz)
}

func (n *Note) Type() uint64 {
	return n.view.read(noteLayout.typ)
}

func (n *Note) SetNameSize(v uint64) error {
	return n.view.write(noteLayout.namesz, v)
}

func (n *Note) SetDescSize(v uint64) error {
	return n.view.write(noteLayout.descsz, v)
}

func (n *Note) SetType(v uint64) error {
	return n.view.write(noteLayout.typ, v)
}

// payload is the window remaining after the three leading fields.
func (n *Note) payload() []byte {
	return n.view.bytes()[layoutSize(noteFields, n.view.file.class):]
}

// Name returns the note's owner name, trailing NUL stripped. A declared size
// larger than the note's window is a bounds error.
func (n *Note) Name() (string, error) {
	var (
		data = n.payload()
		size = n.NameSize()
	)
	if size > uint64(len(data)) {
		return "", &BoundsError{Offset: uint64(n.view.off), Length: size, Size: uint64(len(data))}
	}
	name := data[:size]
	if size > 0 && name[size-1] == 0 {
		name = name[:size-1]
	}
	return string(name), nil
}

// Desc returns the note's description bytes, which follow the name padded to
// word alignment. The declared sizes come from the buffer, so each step is
// checked before the arithmetic that uses it can wrap.
func (n *Note) Desc() ([]byte, error) {
	var (
		data  = n.payload()
		align = uint64(n.view.file.class.wordSize())
		name  = n.NameSize()
		size  = n.DescSize()
	)
	if name > uint64(len(data)) {
		return nil, &BoundsError{Offset: uint64(n.view.off), Length: name, Size: uint64(len(data))}
	}
	start := (name + align - 1) / align * align
	if start > uint64(len(data)) || size > uint64(len(data))-start {
		return nil, &BoundsError{Offset: uint64(n.view.off), Length: size, Size: uint64(len(data))}
	}
	return data[start : start+size], nil
}
