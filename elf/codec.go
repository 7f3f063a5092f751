package elf

type width uint8

const (
	u8 width = iota + 1
	u16
	u32
	u64
	word
)

// field is one entry of a record layout table: the byte offset of the field
// in the 32- and 64-bit encodings, and its declared width. Word-width fields
// resolve to 32 or 64 bits per the file's class.
type field struct {
	name  string
	off32 int
	off64 int
	width width
}

func (f field) offset(c Class) int {
	if c == Class64 {
		return f.off64
	}
	return f.off32
}

func (f field) bits(c Class) int {
	switch f.width {
	case u8:
		return 8
	case u16:
		return 16
	case u32:
		return 32
	case u64:
		return 64
	default:
		return c.wordSize() * 8
	}
}

func (f field) end(c Class) int {
	return f.offset(c) + f.bits(c)/8
}

// layoutSize is the smallest window a record with the given layout fits in.
func layoutSize(fields []field, c Class) int {
	var size int
	for _, f := range fields {
		if end := f.end(c); end > size {
			size = end
		}
	}
	return size
}

// view is a (start, length) window into the shared file buffer. Every
// decoded element holds one; an edit through any view is visible through
// every other view whose range overlaps. Views never copy buffer bytes.
type view struct {
	file *File
	off  int
	size int
}

// view bounds-checks the window against the buffer once, at construction.
func (f *File) view(off, size uint64) (view, error) {
	end := off + size
	if end < off || end > uint64(len(f.data)) {
		return view{}, &BoundsError{Offset: off, Length: size, Size: uint64(len(f.data))}
	}
	return view{file: f, off: int(off), size: int(size)}, nil
}

func (v view) bytes() []byte {
	return v.file.data[v.off : v.off+v.size]
}

// read decodes the field from the live buffer bytes; 8-, 16- and 32-bit
// values are widened to uint64 so callers handle both classes uniformly.
func (v view) read(f field) uint64 {
	b := v.file.data[v.off+f.offset(v.file.class):]
	switch f.bits(v.file.class) {
	case 8:
		return uint64(b[0])
	case 16:
		return uint64(v.file.order.Uint16(b))
	case 32:
		return uint64(v.file.order.Uint32(b))
	default:
		return v.file.order.Uint64(b)
	}
}

// write encodes the value in place. A value that does not fit the field's
// encoded width is a range error, not a silent truncation.
func (v view) write(f field, val uint64) error {
	bits := f.bits(v.file.class)
	if bits < 64 && val>>uint(bits) != 0 {
		return &RangeError{Field: f.name, Value: val, Bits: bits}
	}
	b := v.file.data[v.off+f.offset(v.file.class):]
	switch bits {
	case 8:
		b[0] = byte(val)
	case 16:
		v.file.order.PutUint16(b, uint16(val))
	case 32:
		v.file.order.PutUint32(b, uint32(val))
	default:
		v.file.order.PutUint64(b, val)
	}
	return nil
}
