package elf

// Reserved section indices.
const (
	SHN_UNDEF  uint16 = 0x0000
	SHN_ABS    uint16 = 0xFFF1
	SHN_COMMON uint16 = 0xFFF2
	SHN_XINDEX uint16 = 0xFFFF
)

type OSABI uint8

const (
	OSABI_NONE    OSABI = 0
	OSABI_HPUX    OSABI = 1
	OSABI_NETBSD  OSABI = 2
	OSABI_LINUX   OSABI = 3
	OSABI_SOLARIS OSABI = 6
	OSABI_FREEBSD OSABI = 9
	OSABI_OPENBSD OSABI = 12
)

var osabis = map[OSABI]string{
	OSABI_NONE:    "UNIX System V",
	OSABI_HPUX:    "HP-UX",
	OSABI_NETBSD:  "NetBSD",
	OSABI_LINUX:   "Linux",
	OSABI_SOLARIS: "Solaris",
	OSABI_FREEBSD: "FreeBSD",
	OSABI_OPENBSD: "OpenBSD",
}

func (o OSABI) String() string {
	v, ok := osabis[o]
	if !ok {
		return "unknown"
	}
	return v
}

type FileType uint16

const (
	ET_NONE FileType = 0
	ET_REL  FileType = 1
	ET_EXEC FileType = 2
	ET_DYN  FileType = 3
	ET_CORE FileType = 4
)

var fileTypes = map[FileType]string{
	ET_NONE: "none",
	ET_REL:  "relocatable file",
	ET_EXEC: "executable file",
	ET_DYN:  "shared object",
	ET_CORE: "core file",
}

func (t FileType) String() string {
	v, ok := fileTypes[t]
	if !ok {
		return "unknown"
	}
	return v
}

type Machine uint16

const (
	EM_NONE    Machine = 0
	EM_M68K    Machine = 4
	EM_386     Machine = 3
	EM_MIPS    Machine = 8
	EM_PPC     Machine = 20
	EM_PPC64   Machine = 21
	EM_S390    Machine = 22
	EM_ARM     Machine = 40
	EM_SPARCV9 Machine = 43
	EM_IA64    Machine = 50
	EM_X86_64  Machine = 62
	EM_AARCH64 Machine = 183
	EM_RISCV   Machine = 243
)

var machines = map[Machine]string{
	EM_NONE:    "none",
	EM_M68K:    "Motorola 68000",
	EM_386:     "Intel 80386",
	EM_MIPS:    "MIPS",
	EM_PPC:     "PowerPC",
	EM_PPC64:   "PowerPC 64-bit",
	EM_S390:    "IBM S/390",
	EM_ARM:     "ARM",
	EM_SPARCV9: "SPARC v9",
	EM_IA64:    "Intel IA-64",
	EM_X86_64:  "AMD x86-64",
	EM_AARCH64: "AArch64",
	EM_RISCV:   "RISC-V",
}

func (m Machine) String() string {
	v, ok := machines[m]
	if !ok {
		return "unknown"
	}
	return v
}

type SectionType uint32

const (
	SHT_NULL     SectionType = 0
	SHT_PROGBITS SectionType = 1
	SHT_SYMTAB   SectionType = 2
	SHT_STRTAB   SectionType = 3
	SHT_RELA     SectionType = 4
	SHT_HASH     SectionType = 5
	SHT_DYNAMIC  SectionType = 6
	SHT_NOTE     SectionType = 7
	SHT_NOBITS   SectionType = 8
	SHT_REL      SectionType = 9
	SHT_SHLIB    SectionType = 10
	SHT_DYNSYM   SectionType = 11
)

var sectionTypes = map[SectionType]string{
	SHT_NULL:     "NULL",
	SHT_PROGBITS: "PROGBITS",
	SHT_SYMTAB:   "SYMTAB",
	SHT_STRTAB:   "STRTAB",
	SHT_RELA:     "RELA",
	SHT_HASH:     "HASH",
	SHT_DYNAMIC:  "DYNAMIC",
	SHT_NOTE:     "NOTE",
	SHT_NOBITS:   "NOBITS",
	SHT_REL:      "REL",
	SHT_SHLIB:    "SHLIB",
	SHT_DYNSYM:   "DYNSYM",
}

func (t SectionType) String() string {
	v, ok := sectionTypes[t]
	if !ok {
		return "other"
	}
	return v
}

// Section flags.
const (
	SHF_WRITE     uint64 = 0x1
	SHF_ALLOC     uint64 = 0x2
	SHF_EXECINSTR uint64 = 0x4
	SHF_MERGE     uint64 = 0x10
	SHF_STRINGS   uint64 = 0x20
	SHF_TLS       uint64 = 0x400
)

type ProgramType uint32

const (
	PT_NULL    ProgramType = 0
	PT_LOAD    ProgramType = 1
	PT_DYNAMIC ProgramType = 2
	PT_INTERP  ProgramType = 3
	PT_NOTE    ProgramType = 4
	PT_SHLIB   ProgramType = 5
	PT_PHDR    ProgramType = 6
	PT_TLS     ProgramType = 7
)

var programTypes = map[ProgramType]string{
	PT_NULL:    "NULL",
	PT_LOAD:    "LOAD",
	PT_DYNAMIC: "DYNAMIC",
	PT_INTERP:  "INTERP",
	PT_NOTE:    "NOTE",
	PT_SHLIB:   "SHLIB",
	PT_PHDR:    "PHDR",
	PT_TLS:     "TLS",
}

func (t ProgramType) String() string {
	v, ok := programTypes[t]
	if !ok {
		return "other"
	}
	return v
}

// Segment flags.
const (
	PF_X uint32 = 0x1
	PF_W uint32 = 0x2
	PF_R uint32 = 0x4
)

type SymbolType uint8

const (
	STT_NOTYPE  SymbolType = 0
	STT_OBJECT  SymbolType = 1
	STT_FUNC    SymbolType = 2
	STT_SECTION SymbolType = 3
	STT_FILE    SymbolType = 4
	STT_COMMON  SymbolType = 5
	STT_TLS     SymbolType = 6
)

var symbolTypes = map[SymbolType]string{
	STT_NOTYPE:  "NOTYPE",
	STT_OBJECT:  "OBJECT",
	STT_FUNC:    "FUNC",
	STT_SECTION: "SECTION",
	STT_FILE:    "FILE",
	STT_COMMON:  "COMMON",
	STT_TLS:     "TLS",
}

func (t SymbolType) String() string {
	v, ok := symbolTypes[t]
	if !ok {
		return "unknown"
	}
	return v
}

type SymbolBinding uint8

const (
	STB_LOCAL  SymbolBinding = 0
	STB_GLOBAL SymbolBinding = 1
	STB_WEAK   SymbolBinding = 2
)

var symbolBindings = map[SymbolBinding]string{
	STB_LOCAL:  "LOCAL",
	STB_GLOBAL: "GLOBAL",
	STB_WEAK:   "WEAK",
}

func (b SymbolBinding) String() string {
	v, ok := symbolBindings[b]
	if !ok {
		return "unknown"
	}
	return v
}

type SymbolVisibility uint8

const (
	STV_DEFAULT   SymbolVisibility = 0
	STV_INTERNAL  SymbolVisibility = 1
	STV_HIDDEN    SymbolVisibility = 2
	STV_PROTECTED SymbolVisibility = 3
)

var symbolVisibilities = map[SymbolVisibility]string{
	STV_DEFAULT:   "DEFAULT",
	STV_INTERNAL:  "INTERNAL",
	STV_HIDDEN:    "HIDDEN",
	STV_PROTECTED: "PROTECTED",
}

func (s SymbolVisibility) String() string {
	v, ok := symbolVisibilities[s]
	if !ok {
		return "unknown"
	}
	return v
}

type DynamicTag int64

const (
	DT_NULL     DynamicTag = 0
	DT_NEEDED   DynamicTag = 1
	DT_PLTRELSZ DynamicTag = 2
	DT_PLTGOT   DynamicTag = 3
	DT_HASH     DynamicTag = 4
	DT_STRTAB   DynamicTag = 5
	DT_SYMTAB   DynamicTag = 6
	DT_RELA     DynamicTag = 7
	DT_RELASZ   DynamicTag = 8
	DT_RELAENT  DynamicTag = 9
	DT_STRSZ    DynamicTag = 10
	DT_SYMENT   DynamicTag = 11
	DT_INIT     DynamicTag = 12
	DT_FINI     DynamicTag = 13
	DT_SONAME   DynamicTag = 14
	DT_RPATH    DynamicTag = 15
	DT_SYMBOLIC DynamicTag = 16
	DT_REL      DynamicTag = 17
	DT_RELSZ    DynamicTag = 18
	DT_RELENT   DynamicTag = 19
	DT_PLTREL   DynamicTag = 20
	DT_DEBUG    DynamicTag = 21
	DT_TEXTREL  DynamicTag = 22
	DT_JMPREL   DynamicTag = 23
	DT_BIND_NOW DynamicTag = 24
	DT_RUNPATH  DynamicTag = 29
	DT_FLAGS    DynamicTag = 30
)

var dynamicTags = map[DynamicTag]string{
	DT_NULL:     "NULL",
	DT_NEEDED:   "NEEDED",
	DT_PLTRELSZ: "PLTRELSZ",
	DT_PLTGOT:   "PLTGOT",
	DT_HASH:     "HASH",
	DT_STRTAB:   "STRTAB",
	DT_SYMTAB:   "SYMTAB",
	DT_RELA:     "RELA",
	DT_RELASZ:   "RELASZ",
	DT_RELAENT:  "RELAENT",
	DT_STRSZ:    "STRSZ",
	DT_SYMENT:   "SYMENT",
	DT_INIT:     "INIT",
	DT_FINI:     "FINI",
	DT_SONAME:   "SONAME",
	DT_RPATH:    "RPATH",
	DT_SYMBOLIC: "SYMBOLIC",
	DT_REL:      "REL",
	DT_RELSZ:    "RELSZ",
	DT_RELENT:   "RELENT",
	DT_PLTREL:   "PLTREL",
	DT_DEBUG:    "DEBUG",
	DT_TEXTREL:  "TEXTREL",
	DT_JMPREL:   "JMPREL",
	DT_BIND_NOW: "BIND_NOW",
	DT_RUNPATH:  "RUNPATH",
	DT_FLAGS:    "FLAGS",
}

func (t DynamicTag) String() string {
	v, ok := dynamicTags[t]
	if !ok {
		return "unknown"
	}
	return v
}
