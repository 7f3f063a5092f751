package elf

// Field layout tables for every record type, 32- and 64-bit offsets side by
// side. Fields located before the first word-width field keep one offset;
// everything after shifts by the word-size delta. The program header flags
// field is the one genuine exception: it sits at the end of the 32-bit
// encoding and right after type in the 64-bit one.

var headerLayout = struct {
	typ       field
	machine   field
	version   field
	entry     field
	phoff     field
	shoff     field
	flags     field
	ehsize    field
	phentsize field
	phnum     field
	shentsize field
	shnum     field
	shstrndx  field
}{
	typ:       field{"type", 0x10, 0x10, u16},
	machine:   field{"machine", 0x12, 0x12, u16},
	version:   field{"version", 0x14, 0x14, u32},
	entry:     field{"entry", 0x18, 0x18, word},
	phoff:     field{"phoff", 0x1c, 0x20, word},
	shoff:     field{"shoff", 0x20, 0x28, word},
	flags:     field{"flags", 0x24, 0x30, u32},
	ehsize:    field{"ehsize", 0x28, 0x34, u16},
	phentsize: field{"phentsize", 0x2a, 0x36, u16},
	phnum:     field{"phnum", 0x2c, 0x38, u16},
	shentsize: field{"shentsize", 0x2e, 0x3a, u16},
	shnum:     field{"shnum", 0x30, 0x3c, u16},
	shstrndx:  field{"shstrndx", 0x32, 0x3e, u16},
}

var headerFields = []field{
	headerLayout.typ, headerLayout.machine, headerLayout.version,
	headerLayout.entry, headerLayout.phoff, headerLayout.shoff,
	headerLayout.flags, headerLayout.ehsize, headerLayout.phentsize,
	headerLayout.phnum, headerLayout.shentsize, headerLayout.shnum,
	headerLayout.shstrndx,
}

var sectionLayout = struct {
	name      field
	typ       field
	flags     field
	addr      field
	offset    field
	size      field
	link      field
	info      field
	addralign field
	entsize   field
}{
	name:      field{"name", 0x00, 0x00, u32},
	typ:       field{"type", 0x04, 0x04, u32},
	flags:     field{"flags", 0x08, 0x08, word},
	addr:      field{"addr", 0x0c, 0x10, word},
	offset:    field{"offset", 0x10, 0x18, word},
	size:      field{"size", 0x14, 0x20, word},
	link:      field{"link", 0x18, 0x28, u32},
	info:      field{"info", 0x1c, 0x2c, u32},
	addralign: field{"addralign", 0x20, 0x30, word},
	entsize:   field{"entsize", 0x24, 0x38, word},
}

var sectionFields = []field{
	sectionLayout.name, sectionLayout.typ, sectionLayout.flags,
	sectionLayout.addr, sectionLayout.offset, sectionLayout.size,
	sectionLayout.link, sectionLayout.info, sectionLayout.addralign,
	sectionLayout.entsize,
}

var programLayout = struct {
	typ    field
	flags  field
	offset field
	vaddr  field
	paddr  field
	filesz field
	memsz  field
	align  field
}{
	typ:    field{"type", 0x00, 0x00, u32},
	flags:  field{"flags", 0x18, 0x04, u32},
	offset: field{"offset", 0x04, 0x08, word},
	vaddr:  field{"vaddr", 0x08, 0x10, word},
	paddr:  field{"paddr", 0x0c, 0x18, word},
	filesz: field{"filesz", 0x10, 0x20, word},
	memsz:  field{"memsz", 0x14, 0x28, word},
	align:  field{"align", 0x1c, 0x30, word},
}

var programFields = []field{
	programLayout.typ, programLayout.flags, programLayout.offset,
	programLayout.vaddr, programLayout.paddr, programLayout.filesz,
	programLayout.memsz, programLayout.align,
}

var symbolLayout = struct {
	name  field
	value field
	size  field
	info  field
	other field
	shndx field
}{
	name:  field{"name", 0x00, 0x00, u32},
	value: field{"value", 0x04, 0x08, word},
	size:  field{"size", 0x08, 0x10, word},
	info:  field{"info", 0x0c, 0x04, u8},
	other: field{"other", 0x0d, 0x05, u8},
	shndx: field{"shndx", 0x0e, 0x06, u16},
}

var symbolFields = []field{
	symbolLayout.name, symbolLayout.value, symbolLayout.size,
	symbolLayout.info, symbolLayout.other, symbolLayout.shndx,
}

var relocationLayout = struct {
	offset field
	info   field
	addend field
}{
	offset: field{"offset", 0x00, 0x00, word},
	info:   field{"info", 0x04, 0x08, word},
	addend: field{"addend", 0x08, 0x10, word},
}

var relFields = []field{
	relocationLayout.offset, relocationLayout.info,
}

var relaFields = []field{
	relocationLayout.offset, relocationLayout.info, relocationLayout.addend,
}

var dynamicLayout = struct {
	tag   field
	value field
}{
	tag:   field{"tag", 0x00, 0x00, word},
	value: field{"value", 0x04, 0x08, word},
}

var dynamicFields = []field{
	dynamicLayout.tag, dynamicLayout.value,
}

var noteLayout = struct {
	namesz field
	descsz field
	typ    field
}{
	namesz: field{"namesz", 0x00, 0x00, word},
	descsz: field{"descsz", 0x04, 0x08, word},
	typ:    field{"type", 0x08, 0x10, word},
}

var noteFields = []field{
	noteLayout.namesz, noteLayout.descsz, noteLayout.typ,
}
