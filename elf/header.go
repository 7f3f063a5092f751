package elf

// Header is a view over the fixed-position file header, identification bytes
// included. Getters decode the live buffer; setters encode back into it.
type Header struct {
	view view
}

func (h *Header) Ident() []byte {
	return h.view.bytes()[:identSize]
}

func (h *Header) IdentVersion() uint8 {
	return h.view.bytes()[identVersion]
}

func (h *Header) OSABI() OSABI {
	return OSABI(h.view.bytes()[identABI])
}

func (h *Header) SetOSABI(v OSABI) {
	h.view.bytes()[identABI] = uint8(v)
}

func (h *Header) ABIVersion() uint8 {
	return h.view.bytes()[identABIVersion]
}

func (h *Header) SetABIVersion(v uint8) {
	h.view.bytes()[identABIVersion] = v
}

func (h *Header) Type() FileType {
	return FileType(h.view.read(headerLayout.typ))
}

func (h *Header) Machine() Machine {
	return Machine(h.view.read(headerLayout.machine))
}

func (h *Header) Version() uint32 {
	return uint32(h.view.read(headerLayout.version))
}

func (h *Header) Entry() uint64 {
	return h.view.read(headerLayout.entry)
}

func (h *Header) Phoff() uint64 {
	return h.view.read(headerLayout.phoff)
}

func (h *Header) Shoff() uint64 {
	return h.view.read(headerLayout.shoff)
}

func (h *Header) Flags() uint32 {
	return uint32(h.view.read(headerLayout.flags))
}

func (h *Header) Ehsize() uint16 {
	return uint16(h.view.read(headerLayout.ehsize))
}

func (h *Header) Phentsize() uint16 {
	return uint16(h.view.read(headerLayout.phentsize))
}

func (h *Header) Phnum() uint16 {
	return uint16(h.view.read(headerLayout.phnum))
}

func (h *Header) Shentsize() uint16 {
	return uint16(h.view.read(headerLayout.shentsize))
}

func (h *Header) Shnum() uint16 {
	return uint16(h.view.read(headerLayout.shnum))
}

func (h *Header) Shstrndx() uint16 {
	return uint16(h.view.read(headerLayout.shstrndx))
}

func (h *Header) SetType(v FileType) error {
	return h.view.write(headerLayout.typ, uint64(v))
}

func (h *Header) SetMachine(v Machine) error {
	return h.view.write(headerLayout.machine, uint64(v))
}

func (h *Header) SetVersion(v uint32) error {
	return h.view.write(headerLayout.version, uint64(v))
}

func (h *Header) SetEntry(v uint64) error {
	return h.view.write(headerLayout.entry, v)
}

func (h *Header) SetPhoff(v uint64) error {
	return h.view.write(headerLayout.phoff, v)
}

func (h *Header) SetShoff(v uint64) error {
	return h.view.write(headerLayout.shoff, v)
}

func (h *Header) SetFlags(v uint32) error {
	return h.view.write(headerLayout.flags, uint64(v))
}

func (h *Header) SetEhsize(v uint16) error {
	return h.view.write(headerLayout.ehsize, uint64(v))
}

func (h *Header) SetPhentsize(v uint16) error {
	return h.view.write(headerLayout.phentsize, uint64(v))
}

func (h *Header) SetPhnum(v uint16) error {
	return h.view.write(headerLayout.phnum, uint64(v))
}

func (h *Header) SetShentsize(v uint16) error {
	return h.view.write(headerLayout.shentsize, uint64(v))
}

func (h *Header) SetShnum(v uint16) error {
	return h.view.write(headerLayout.shnum, uint64(v))
}

func (h *Header) SetShstrndx(v uint16) error {
	return h.view.write(headerLayout.shstrndx, uint64(v))
}
