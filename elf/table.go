package elf

import "fmt"

// walkTable slices count windows of entsize bytes out of the buffer starting
// at off and builds one element per window. The whole table is bounds-checked
// up front; a stride too small for the record layout is rejected before any
// element is built.
func walkTable[T any](f *File, off, entsize, count uint64, fields []field, build func(v view, i int) T) ([]T, error) {
	if count == 0 {
		return nil, nil
	}
	min := layoutSize(fields, f.class)
	if entsize < uint64(min) {
		return nil, fmt.Errorf("elf: entry size %d below %d byte minimum", entsize, min)
	}
	total := entsize * count
	if total/entsize != count {
		return nil, &BoundsError{Offset: off, Length: total, Size: uint64(len(f.data))}
	}
	if _, err := f.view(off, total); err != nil {
		return nil, err
	}
	list := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		v, err := f.view(off+i*entsize, entsize)
		if err != nil {
			return nil, err
		}
		list = append(list, build(v, int(i)))
	}
	return list, nil
}
