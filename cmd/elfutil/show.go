package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"

	"github.com/dr-vortex/elfutils/elf"
)

func runInfo(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	for i, a := range cmd.Flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		if err := elf.Debug(a, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	sections, err := f.Sections()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "index\tname\ttype\taddr\toffset\tsize\tlink\tentsize")
	for _, s := range sections {
		name, err := s.Name()
		if err != nil {
			name = "<none>"
		}
		fmt.Fprintf(w, "[%2d]\t%s\t%s\t%#x\t%#x\t%d\t%d\t%d\n", s.Index(), name, s.Type(), s.Addr(), s.Offset(), s.Size(), s.Link(), s.EntSize())
	}
	return nil
}

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	programs, err := f.Programs()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "index\ttype\toffset\tvaddr\tpaddr\tfilesz\tmemsz\tflags\talign")
	for _, p := range programs {
		fmt.Fprintf(w, "[%2d]\t%s\t%#x\t%#x\t%#x\t%d\t%d\t%s\t%#x\n", p.Index(), p.Type(), p.Offset(), p.Vaddr(), p.Paddr(), p.Filesz(), p.Memsz(), flagString(p.Flags()), p.Align())
	}
	return nil
}

func flagString(f uint32) string {
	var (
		r = "-"
		w = "-"
		x = "-"
	)
	if f&elf.PF_R != 0 {
		r = "r"
	}
	if f&elf.PF_W != 0 {
		w = "w"
	}
	if f&elf.PF_X != 0 {
		x = "x"
	}
	return r + w + x
}
