package elf

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Debug decodes the given file and dumps its header and section table. It
// consumes only the typed accessors; nothing here touches raw bytes.
func Debug(file string, w io.Writer) error {
	f, err := Open(file)
	if err != nil {
		return err
	}
	h := f.Header()
	fmt.Fprintf(w, "Class                      : %s\n", f.Class())
	fmt.Fprintf(w, "Data                       : %s\n", Data(h.Ident()[identData]))
	fmt.Fprintf(w, "OS/ABI                     : %s\n", h.OSABI())
	fmt.Fprintf(w, "ABI Version                : %d\n", h.ABIVersion())
	fmt.Fprintf(w, "Type                       : %s\n", h.Type())
	fmt.Fprintf(w, "Machine                    : %s\n", h.Machine())
	fmt.Fprintf(w, "Version                    : %#x\n", h.Version())
	fmt.Fprintf(w, "Entry point address        : %#x\n", h.Entry())
	fmt.Fprintf(w, "Start of program headers   : %d\n", h.Phoff())
	fmt.Fprintf(w, "Start of section headers   : %d\n", h.Shoff())
	fmt.Fprintf(w, "Flags                      : %#x\n", h.Flags())
	fmt.Fprintf(w, "Size of this header        : %d\n", h.Ehsize())
	fmt.Fprintf(w, "Size of program headers    : %d\n", h.Phentsize())
	fmt.Fprintf(w, "Number of program headers  : %d\n", h.Phnum())
	fmt.Fprintf(w, "Size of section headers    : %d\n", h.Shentsize())
	fmt.Fprintf(w, "Number of section headers  : %d\n", h.Shnum())
	fmt.Fprintf(w, "Section header string index: %d\n", h.Shstrndx())

	sections, err := f.Sections()
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	ws := tabwriter.NewWriter(w, 12, 2, 2, ' ', 0)
	defer ws.Flush()
	for i, s := range sections {
		name, err := s.Name()
		if err != nil {
			name = "<none>"
		}
		fmt.Fprintf(ws, "[%2d]\t%s\t%s\t%#x\t%d\t%d\n", i, name, s.Type(), s.Offset(), s.Size(), s.EntSize())
	}
	return nil
}
