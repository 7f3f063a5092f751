package elf

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(class Class, order binary.ByteOrder, size int) *File {
	return &File{data: make([]byte, size), class: class, order: order}
}

func TestLayoutOffsets(t *testing.T) {
	assert.Equal(t, 0x1c, headerLayout.phoff.offset(Class32))
	assert.Equal(t, 0x20, headerLayout.phoff.offset(Class64))
	assert.Equal(t, 0x32, headerLayout.shstrndx.offset(Class32))
	assert.Equal(t, 0x3e, headerLayout.shstrndx.offset(Class64))

	// the program header flags field moves, it does not just shift
	assert.Equal(t, 0x18, programLayout.flags.offset(Class32))
	assert.Equal(t, 0x04, programLayout.flags.offset(Class64))
	assert.Equal(t, 0x04, programLayout.offset.offset(Class32))
	assert.Equal(t, 0x08, programLayout.offset.offset(Class64))

	// symbol fields are reordered between the two classes
	assert.Equal(t, 0x0c, symbolLayout.info.offset(Class32))
	assert.Equal(t, 0x04, symbolLayout.info.offset(Class64))
	assert.Equal(t, 0x04, symbolLayout.value.offset(Class32))
	assert.Equal(t, 0x08, symbolLayout.value.offset(Class64))
}

func TestLayoutSizes(t *testing.T) {
	assert.Equal(t, 0x34, layoutSize(headerFields, Class32))
	assert.Equal(t, 0x40, layoutSize(headerFields, Class64))
	assert.Equal(t, 0x28, layoutSize(sectionFields, Class32))
	assert.Equal(t, 0x40, layoutSize(sectionFields, Class64))
	assert.Equal(t, 0x20, layoutSize(programFields, Class32))
	assert.Equal(t, 0x38, layoutSize(programFields, Class64))
	assert.Equal(t, 0x10, layoutSize(symbolFields, Class32))
	assert.Equal(t, 0x18, layoutSize(symbolFields, Class64))
	assert.Equal(t, 0x08, layoutSize(relFields, Class32))
	assert.Equal(t, 0x10, layoutSize(relFields, Class64))
	assert.Equal(t, 0x0c, layoutSize(relaFields, Class32))
	assert.Equal(t, 0x18, layoutSize(relaFields, Class64))
	assert.Equal(t, 0x08, layoutSize(dynamicFields, Class32))
	assert.Equal(t, 0x10, layoutSize(dynamicFields, Class64))
}

func TestReadWriteRoundTrip(t *testing.T) {
	fields := []field{
		{"b", 0, 0, u8},
		{"h", 2, 2, u16},
		{"w", 4, 4, u32},
		{"d", 8, 8, u64},
		{"n", 16, 16, word},
	}
	values := map[width]uint64{
		u8:   0xAB,
		u16:  0xABCD,
		u32:  0xABCDEF01,
		u64:  0xABCDEF0123456789,
		word: 0x01234567,
	}
	classes := []Class{Class32, Class64}
	orders := []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}
	for _, class := range classes {
		for _, order := range orders {
			f := testFile(class, order, 64)
			v, err := f.view(0, 64)
			require.NoError(t, err)
			for _, fd := range fields {
				want := values[fd.width]
				require.NoError(t, v.write(fd, want), "%s %s field %s", class, order, fd.name)
				assert.Equal(t, want, v.read(fd), "%s %s field %s", class, order, fd.name)
			}
		}
	}
}

func TestWordWidthPerClass(t *testing.T) {
	fd := field{"n", 0, 0, word}

	f := testFile(Class64, binary.LittleEndian, 16)
	v, err := f.view(0, 16)
	require.NoError(t, err)
	require.NoError(t, v.write(fd, 0x1122334455667788))
	assert.Equal(t, uint64(0x1122334455667788), v.read(fd))

	f = testFile(Class32, binary.LittleEndian, 16)
	v, err = f.view(0, 16)
	require.NoError(t, err)
	require.NoError(t, v.write(fd, 0x11223344))
	assert.Equal(t, uint64(0x11223344), v.read(fd))
	assert.Zero(t, f.data[4], "32-bit word write must stay in 4 bytes")
}

func TestWriteRange(t *testing.T) {
	f := testFile(Class32, binary.LittleEndian, 16)
	v, err := f.view(0, 16)
	require.NoError(t, err)

	var re *RangeError
	err = v.write(field{"w", 0, 0, u32}, 1<<32)
	require.Error(t, err)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 32, re.Bits)

	// a word field is 32 bits wide on the 32-bit class
	err = v.write(field{"n", 0, 0, word}, 1<<32)
	require.Error(t, err)
	assert.True(t, errors.As(err, &re))

	err = v.write(field{"h", 0, 0, u16}, 0x10000)
	require.Error(t, err)
	assert.True(t, errors.As(err, &re))
}

func TestViewBounds(t *testing.T) {
	f := testFile(Class64, binary.LittleEndian, 64)

	_, err := f.view(0, 64)
	assert.NoError(t, err)

	var be *BoundsError
	_, err = f.view(60, 8)
	require.Error(t, err)
	require.True(t, errors.As(err, &be))
	assert.Equal(t, uint64(60), be.Offset)

	_, err = f.view(^uint64(0), 2)
	assert.Error(t, err, "offset overflow must not wrap")
}

func TestWalkTable(t *testing.T) {
	f := testFile(Class32, binary.LittleEndian, 100)
	list, err := walkTable(f, 10, 8, 5, dynamicFields, func(v view, i int) int {
		return v.off
	})
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, off := range list {
		assert.Equal(t, 10+i*8, off)
	}

	var be *BoundsError
	_, err = walkTable(f, 60, 8, 6, dynamicFields, func(v view, i int) int { return v.off })
	require.Error(t, err)
	assert.True(t, errors.As(err, &be), "last window past buffer end")

	_, err = walkTable(f, 0, 4, 2, dynamicFields, func(v view, i int) int { return v.off })
	assert.Error(t, err, "stride below record layout size")
}
