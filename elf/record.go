package elf

import "fmt"

// RecordKind enumerates the typed records a section's content can be chunked
// into. The set is closed: each kind carries the section types it may
// legally come from, and extraction dispatches through that table.
type RecordKind uint8

const (
	SymbolRecord RecordKind = iota + 1
	RelocationRecord
	DynamicRecord
	NoteRecord
)

var recordKinds = map[RecordKind]string{
	SymbolRecord:     "symbol",
	RelocationRecord: "relocation",
	DynamicRecord:    "dynamic",
	NoteRecord:       "note",
}

func (k RecordKind) String() string {
	v, ok := recordKinds[k]
	if !ok {
		return "unknown"
	}
	return v
}

var recordTypes = map[RecordKind][]SectionType{
	SymbolRecord:     {SHT_SYMTAB, SHT_DYNSYM},
	RelocationRecord: {SHT_REL, SHT_RELA},
	DynamicRecord:    {SHT_DYNAMIC},
	NoteRecord:       {SHT_NOTE},
}

// checkKind validates the section's type tag against the set of types the
// record kind may come from. Extraction never yields a partial result: a
// mismatch fails before any record is built.
func checkKind(s *Section, kind RecordKind) error {
	typ := s.Type()
	for _, t := range recordTypes[kind] {
		if typ == t {
			return nil
		}
	}
	return &RecordTypeError{Kind: kind, Type: typ}
}

// records re-applies the table walker to the section's content window,
// chunking it into entsize-sized record views.
func records[T any](s *Section, fields []field, build func(v view, i int) T) ([]T, error) {
	var (
		size = s.Size()
		ent  = s.EntSize()
	)
	if ent == 0 || size%ent != 0 {
		return nil, fmt.Errorf("elf: section of %d byte(s) is not a whole number of %d byte entries", size, ent)
	}
	return walkTable(s.view.file, s.Offset(), ent, size/ent, fields, build)
}
