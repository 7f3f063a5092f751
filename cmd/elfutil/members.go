package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/tape/ar"

	"github.com/dr-vortex/elfutils/elf"
)

func runMembers(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	for _, a := range cmd.Flag.Args() {
		if err := listMembers(a, w); err != nil {
			return err
		}
	}
	return nil
}

// listMembers walks an ar static archive and reports each member's ELF
// identity; non-ELF members (the symbol index, plain data) are listed too.
func listMembers(file string, w io.Writer) error {
	r, err := os.Open(file)
	if err != nil {
		return err
	}
	defer r.Close()

	a, err := ar.NewReader(r)
	if err != nil {
		return err
	}
	for {
		h, err := a.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := io.ReadAll(io.LimitReader(a, h.Size))
		if err != nil {
			return err
		}
		f, err := elf.Decode(data)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", file, h.Filename, h.Size, "not an ELF image")
			continue
		}
		hdr := f.Header()
		fmt.Fprintf(w, "%s\t%s\t%d\t%s, %s, %s\n", file, h.Filename, h.Size, f.Class(), hdr.Type(), hdr.Machine())
	}
}
