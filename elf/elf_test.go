package elf

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankImage decodes a zeroed buffer carrying only valid identification
// bytes; tests then build fixtures through the mutation surface itself.
func blankImage(t *testing.T, class Class, data Data, size int) *File {
	t.Helper()
	buf := make([]byte, size)
	copy(buf, magic)
	buf[identClass] = byte(class)
	buf[identData] = byte(data)
	buf[identVersion] = 1
	f, err := Decode(buf)
	require.NoError(t, err)
	return f
}

func TestDecodeProgramHeader(t *testing.T) {
	// minimal little-endian 64-bit image: header plus one PT_LOAD entry
	buf := make([]byte, 0x40+0x38)
	copy(buf, magic)
	buf[identClass] = byte(Class64)
	buf[identData] = byte(Data2LSB)
	buf[identVersion] = 1

	le := binary.LittleEndian
	le.PutUint16(buf[0x10:], uint16(ET_EXEC))
	le.PutUint16(buf[0x12:], uint16(EM_X86_64))
	le.PutUint32(buf[0x14:], 1)
	le.PutUint64(buf[0x20:], 0x40) // phoff
	le.PutUint16(buf[0x36:], 0x38) // phentsize
	le.PutUint16(buf[0x38:], 1)    // phnum

	le.PutUint32(buf[0x40:], uint32(PT_LOAD))
	le.PutUint64(buf[0x48:], 0x1000) // offset
	le.PutUint64(buf[0x60:], 0x200)  // filesz

	f, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, Class64, f.Class())
	assert.Equal(t, ET_EXEC, f.Header().Type())
	assert.Equal(t, EM_X86_64, f.Header().Machine())

	programs, err := f.Programs()
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, PT_LOAD, programs[0].Type())
	assert.Equal(t, uint64(0x1000), programs[0].Offset())
	assert.Equal(t, uint64(0x200), programs[0].Filesz())

	sections, err := f.Sections()
	require.NoError(t, err)
	assert.Empty(t, sections, "shoff 0 means no section table")
}

func TestDecodeProgramHeader32(t *testing.T) {
	buf := make([]byte, 0x34+0x20)
	copy(buf, magic)
	buf[identClass] = byte(Class32)
	buf[identData] = byte(Data2LSB)
	buf[identVersion] = 1

	le := binary.LittleEndian
	le.PutUint32(buf[0x1c:], 0x34) // phoff
	le.PutUint16(buf[0x2a:], 0x20) // phentsize
	le.PutUint16(buf[0x2c:], 1)    // phnum

	le.PutUint32(buf[0x34:], uint32(PT_LOAD))
	le.PutUint32(buf[0x38:], 0x1000)    // offset
	le.PutUint32(buf[0x44:], 0x200)     // filesz
	le.PutUint32(buf[0x4c:], PF_R|PF_X) // flags, trailing in 32-bit
	le.PutUint32(buf[0x50:], 0x1000)    // align

	f, err := Decode(buf)
	require.NoError(t, err)
	programs, err := f.Programs()
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, PT_LOAD, programs[0].Type())
	assert.Equal(t, uint64(0x1000), programs[0].Offset())
	assert.Equal(t, uint64(0x200), programs[0].Filesz())
	assert.Equal(t, PF_R|PF_X, programs[0].Flags())
	assert.Equal(t, uint64(0x1000), programs[0].Align())
}

func TestEndianFlip(t *testing.T) {
	encode := func(data Data) *File {
		f := blankImage(t, Class64, data, 0x80)
		h := f.Header()
		require.NoError(t, h.SetType(ET_DYN))
		require.NoError(t, h.SetMachine(EM_AARCH64))
		require.NoError(t, h.SetVersion(1))
		require.NoError(t, h.SetEntry(0xDEADBEEF))
		require.NoError(t, h.SetFlags(0x5000200))
		require.NoError(t, h.SetEhsize(0x40))
		return f
	}
	le := encode(Data2LSB)
	be := encode(Data2MSB)

	assert.NotEqual(t, le.Bytes(), be.Bytes(), "encodings must differ")
	assert.Equal(t, le.Header().Type(), be.Header().Type())
	assert.Equal(t, le.Header().Machine(), be.Header().Machine())
	assert.Equal(t, le.Header().Entry(), be.Header().Entry())
	assert.Equal(t, le.Header().Flags(), be.Header().Flags())
	assert.Equal(t, le.Header().Ehsize(), be.Header().Ehsize())
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, class := range []Class{Class32, Class64} {
		f := blankImage(t, class, Data2MSB, 0x80)
		h := f.Header()
		require.NoError(t, h.SetType(ET_REL))
		require.NoError(t, h.SetMachine(EM_RISCV))
		require.NoError(t, h.SetVersion(1))
		require.NoError(t, h.SetEntry(0x11223344))
		require.NoError(t, h.SetPhoff(0x40))
		require.NoError(t, h.SetShoff(0x60))
		require.NoError(t, h.SetFlags(7))
		require.NoError(t, h.SetEhsize(0x34))
		require.NoError(t, h.SetPhentsize(0x20))
		require.NoError(t, h.SetPhnum(0))
		require.NoError(t, h.SetShentsize(0x28))
		require.NoError(t, h.SetShnum(0))
		require.NoError(t, h.SetShstrndx(0))

		assert.Equal(t, ET_REL, h.Type())
		assert.Equal(t, EM_RISCV, h.Machine())
		assert.Equal(t, uint32(1), h.Version())
		assert.Equal(t, uint64(0x11223344), h.Entry())
		assert.Equal(t, uint64(0x40), h.Phoff())
		assert.Equal(t, uint64(0x60), h.Shoff())
		assert.Equal(t, uint32(7), h.Flags())
		assert.Equal(t, uint16(0x34), h.Ehsize())
		assert.Equal(t, uint16(0x20), h.Phentsize())
		assert.Equal(t, uint16(0x28), h.Shentsize())
	}
}

// symtabImage builds a 64-bit image holding a symbol table with two entries,
// its string table, and the section name table.
func symtabImage(t *testing.T) *File {
	t.Helper()
	f := blankImage(t, Class64, Data2LSB, 512)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(4))
	require.NoError(t, h.SetShstrndx(3))

	sym, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, sym.SetNameIndex(1))
	require.NoError(t, sym.SetType(SHT_SYMTAB))
	require.NoError(t, sym.SetOffset(0x140))
	require.NoError(t, sym.SetSize(48))
	require.NoError(t, sym.SetLink(2))
	require.NoError(t, sym.SetEntSize(24))

	str, err := f.SectionAt(2)
	require.NoError(t, err)
	require.NoError(t, str.SetNameIndex(9))
	require.NoError(t, str.SetType(SHT_STRTAB))
	require.NoError(t, str.SetOffset(0x170))
	require.NoError(t, str.SetSize(13))

	shstr, err := f.SectionAt(3)
	require.NoError(t, err)
	require.NoError(t, shstr.SetNameIndex(17))
	require.NoError(t, shstr.SetType(SHT_STRTAB))
	require.NoError(t, shstr.SetOffset(0x180))
	require.NoError(t, shstr.SetSize(27))

	copy(f.Bytes()[0x170:], "\x00main\x00printf\x00")
	copy(f.Bytes()[0x180:], "\x00.symtab\x00.strtab\x00.shstrtab\x00")
	return f
}

func TestSymbols(t *testing.T) {
	f := symtabImage(t)

	sym, err := f.Section(".symtab")
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Index())

	symbols, err := sym.Symbols()
	require.NoError(t, err)
	require.Len(t, symbols, 2, "48 bytes of 24 byte entries")

	s := symbols[1]
	require.NoError(t, s.SetNameIndex(1))
	require.NoError(t, s.SetValue(0x1234))
	require.NoError(t, s.SetSize(16))
	require.NoError(t, s.SetInfo(uint8(STB_GLOBAL)<<4|uint8(STT_FUNC)))
	require.NoError(t, s.SetShndx(SHN_ABS))

	name, err := s.Name()
	require.NoError(t, err)
	assert.Equal(t, "main", name)
	assert.Equal(t, uint64(0x1234), s.Value())
	assert.Equal(t, STT_FUNC, s.Type())
	assert.Equal(t, STB_GLOBAL, s.Binding())
	assert.Equal(t, STV_DEFAULT, s.Visibility())
	assert.True(t, s.Absolute())

	require.NoError(t, s.SetBinding(STB_WEAK))
	assert.Equal(t, STB_WEAK, s.Binding())
	assert.Equal(t, STT_FUNC, s.Type(), "binding edit must keep the type nibble")
}

func TestRecordTypeAffinity(t *testing.T) {
	f := symtabImage(t)
	sym, err := f.Section(".symtab")
	require.NoError(t, err)

	list, err := sym.Relocations()
	require.Error(t, err)
	assert.Nil(t, list, "no partial result")
	var rte *RecordTypeError
	require.True(t, errors.As(err, &rte))
	assert.Equal(t, RelocationRecord, rte.Kind)
	assert.Equal(t, SHT_SYMTAB, rte.Type)

	_, err = sym.Dynamic()
	assert.True(t, errors.As(err, &rte))
	_, err = sym.Notes()
	assert.True(t, errors.As(err, &rte))

	_, err = sym.Strings()
	assert.Error(t, err, "a symbol table is not a string table")
}

func TestSectionNames(t *testing.T) {
	f := symtabImage(t)
	sections, err := f.Sections()
	require.NoError(t, err)
	require.Len(t, sections, 4)

	want := []string{"", ".symtab", ".strtab", ".shstrtab"}
	for i, s := range sections {
		name, err := s.Name()
		require.NoError(t, err)
		assert.Equal(t, want[i], name)
	}

	shstr, err := f.SectionAt(3)
	require.NoError(t, err)
	list, err := shstr.Strings()
	require.NoError(t, err)
	assert.Equal(t, want, list)
}

func TestRelocations(t *testing.T) {
	f := blankImage(t, Class64, Data2LSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(2))

	s, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_RELA))
	require.NoError(t, s.SetOffset(0xC0))
	require.NoError(t, s.SetSize(48))
	require.NoError(t, s.SetEntSize(24))

	relocs, err := s.Relocations()
	require.NoError(t, err)
	require.Len(t, relocs, 2)

	r := relocs[0]
	assert.True(t, r.HasAddend())
	require.NoError(t, r.SetOffset(0x2000))
	require.NoError(t, r.SetInfo(uint64(5)<<32|7))
	require.NoError(t, r.SetAddend(-8))
	assert.Equal(t, uint64(0x2000), r.Offset())
	assert.Equal(t, uint32(5), r.SymbolIndex())
	assert.Equal(t, uint32(7), r.Type())
	v, err := r.Addend()
	require.NoError(t, err)
	assert.Equal(t, int64(-8), v)

	// re-tag the section as REL: addend presence is fixed per extraction
	require.NoError(t, s.SetType(SHT_REL))
	require.NoError(t, s.SetEntSize(16))
	require.NoError(t, s.SetSize(32))
	relocs, err = s.Relocations()
	require.NoError(t, err)
	require.Len(t, relocs, 2)
	assert.False(t, relocs[0].HasAddend())
	_, err = relocs[0].Addend()
	assert.ErrorIs(t, err, ErrNoAddend)
	assert.ErrorIs(t, relocs[0].SetAddend(1), ErrNoAddend)
}

func TestRelocations32(t *testing.T) {
	f := blankImage(t, Class32, Data2MSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x28))
	require.NoError(t, h.SetShnum(2))

	s, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_RELA))
	require.NoError(t, s.SetOffset(0x90))
	require.NoError(t, s.SetSize(12))
	require.NoError(t, s.SetEntSize(12))

	relocs, err := s.Relocations()
	require.NoError(t, err)
	require.Len(t, relocs, 1)

	r := relocs[0]
	require.NoError(t, r.SetInfo(5<<8|7))
	require.NoError(t, r.SetAddend(-4))
	assert.Equal(t, uint32(5), r.SymbolIndex())
	assert.Equal(t, uint32(7), r.Type())
	v, err := r.Addend()
	require.NoError(t, err)
	assert.Equal(t, int64(-4), v)
}

func TestDynamic(t *testing.T) {
	f := blankImage(t, Class64, Data2LSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(2))

	s, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_DYNAMIC))
	require.NoError(t, s.SetOffset(0xC0))
	require.NoError(t, s.SetSize(32))
	require.NoError(t, s.SetEntSize(16))

	entries, err := s.Dynamic()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NoError(t, entries[0].SetTag(DT_NEEDED))
	require.NoError(t, entries[0].SetValue(1))
	assert.Equal(t, DT_NEEDED, entries[0].Tag())
	assert.Equal(t, uint64(1), entries[0].Value())
	assert.Equal(t, DT_NULL, entries[1].Tag())
}

func TestNotes(t *testing.T) {
	f := blankImage(t, Class64, Data2LSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(2))

	s, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_NOTE))
	require.NoError(t, s.SetOffset(0xC0))
	require.NoError(t, s.SetSize(40))
	require.NoError(t, s.SetEntSize(40))

	notes, err := s.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 1)

	n := notes[0]
	require.NoError(t, n.SetNameSize(4))
	require.NoError(t, n.SetDescSize(6))
	require.NoError(t, n.SetType(1))

	content, err := s.Content()
	require.NoError(t, err)
	copy(content[24:], "GNU\x00")
	copy(content[32:], "hello!")

	name, err := n.Name()
	require.NoError(t, err)
	assert.Equal(t, "GNU", name)
	desc, err := n.Desc()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello!"), desc)
	assert.Equal(t, uint64(1), n.Type())
}

func TestNoteSizeOverflow(t *testing.T) {
	f := blankImage(t, Class64, Data2LSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(2))

	s, err := f.SectionAt(1)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_NOTE))
	require.NoError(t, s.SetOffset(0xC0))
	require.NoError(t, s.SetSize(40))
	require.NoError(t, s.SetEntSize(40))

	notes, err := s.Notes()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	n := notes[0]

	// a name size near the uint64 limit must not wrap past the window check
	var be *BoundsError
	require.NoError(t, n.SetNameSize(0xFFFFFFFFFFFFFFF0))
	require.NoError(t, n.SetDescSize(0x20))
	_, err = n.Desc()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))
	_, err = n.Name()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))

	require.NoError(t, n.SetNameSize(4))
	require.NoError(t, n.SetDescSize(0xFFFFFFFFFFFFFFF0))
	_, err = n.Desc()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))

	// a name filling the whole payload leaves no room for a description
	require.NoError(t, n.SetNameSize(16))
	require.NoError(t, n.SetDescSize(1))
	_, err = n.Desc()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))
}

func TestDecodeErrors(t *testing.T) {
	buf := make([]byte, 0x80)
	copy(buf, magic)
	buf[identClass] = byte(Class64)
	buf[identData] = byte(Data2LSB)

	bad := append([]byte(nil), buf...)
	bad[0] = 'X'
	_, err := Decode(bad)
	assert.ErrorIs(t, err, ErrMagic)

	bad = append([]byte(nil), buf...)
	bad[identClass] = 3
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrClass)

	bad = append([]byte(nil), buf...)
	bad[identData] = 0
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrEncoding)

	var be *BoundsError
	_, err = Decode(buf[:10])
	require.Error(t, err)
	assert.True(t, errors.As(err, &be), "truncated identification")

	_, err = Decode(buf[:0x20])
	require.Error(t, err)
	assert.True(t, errors.As(err, &be), "buffer shorter than the header")
}

func TestContentBounds(t *testing.T) {
	f := blankImage(t, Class64, Data2LSB, 256)
	h := f.Header()
	require.NoError(t, h.SetShoff(0x40))
	require.NoError(t, h.SetShentsize(0x40))
	require.NoError(t, h.SetShnum(1))

	s, err := f.SectionAt(0)
	require.NoError(t, err)
	require.NoError(t, s.SetType(SHT_PROGBITS))
	require.NoError(t, s.SetOffset(0x1000))
	require.NoError(t, s.SetSize(16))

	var be *BoundsError
	_, err = s.Content()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be))

	require.NoError(t, h.SetShnum(100))
	_, err = f.Sections()
	require.Error(t, err)
	assert.True(t, errors.As(err, &be), "section table overruns the buffer")
}

func TestMutationAliasing(t *testing.T) {
	f := symtabImage(t)

	a, err := f.SectionAt(1)
	require.NoError(t, err)
	sections, err := f.Sections()
	require.NoError(t, err)
	b := sections[1]

	require.NoError(t, a.SetSize(24))
	assert.Equal(t, uint64(24), b.Size(), "views over one window must alias")

	require.NoError(t, f.Header().SetEntry(0xCAFE))
	raw := binary.LittleEndian.Uint64(f.Bytes()[0x18:])
	assert.Equal(t, uint64(0xCAFE), raw, "edits land in the shared buffer")
}
