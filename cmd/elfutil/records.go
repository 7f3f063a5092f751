package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/textwrap"

	"github.com/dr-vortex/elfutils/elf"
)

func runSymbols(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	return eachSection(f, func(s *elf.Section) error {
		symbols, err := s.Symbols()
		if err != nil {
			return skipKind(err)
		}
		name, _ := s.Name()
		fmt.Fprintf(w, "%d symbols in section %s\n", len(symbols), name)
		for _, sym := range symbols {
			n, err := sym.Name()
			if err != nil {
				n = "<none>"
			}
			fmt.Fprintf(w, "[%4d]\t%#x\t%d\t%s\t%s\t%s\t%s\n", sym.Index(), sym.Value(), sym.Size(), sym.Type(), sym.Binding(), sym.Visibility(), n)
		}
		return nil
	})
}

func runRelocs(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	return eachSection(f, func(s *elf.Section) error {
		relocs, err := s.Relocations()
		if err != nil {
			return skipKind(err)
		}
		name, _ := s.Name()
		fmt.Fprintf(w, "%d relocations in section %s\n", len(relocs), name)
		for _, r := range relocs {
			addend := "-"
			if r.HasAddend() {
				v, err := r.Addend()
				if err != nil {
					return err
				}
				addend = fmt.Sprintf("%d", v)
			}
			fmt.Fprintf(w, "[%4d]\t%#x\t%d\t%d\t%s\n", r.Index(), r.Offset(), r.SymbolIndex(), r.Type(), addend)
		}
		return nil
	})
}

func runDynamic(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	return eachSection(f, func(s *elf.Section) error {
		entries, err := s.Dynamic()
		if err != nil {
			return skipKind(err)
		}
		for _, d := range entries {
			fmt.Fprintf(w, "[%4d]\t%s\t%#x\n", d.Index(), d.Tag(), d.Value())
		}
		return nil
	})
}

func runNotes(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	return eachSection(f, func(s *elf.Section) error {
		notes, err := s.Notes()
		if err != nil {
			return skipKind(err)
		}
		name, _ := s.Name()
		for _, n := range notes {
			owner, err := n.Name()
			if err != nil {
				return err
			}
			desc, err := n.Desc()
			if err != nil {
				return err
			}
			fmt.Printf("%s: owner %s, type %#x, %d byte(s)\n", name, owner, n.Type(), n.DescSize())
			if str := printable(desc); str != "" {
				fmt.Println(textwrap.Wrap(str))
			}
		}
		return nil
	})
}

func runStrings(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	f, err := elf.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	return eachSection(f, func(s *elf.Section) error {
		if s.Type() != elf.SHT_STRTAB {
			return nil
		}
		list, err := s.Strings()
		if err != nil {
			return err
		}
		name, _ := s.Name()
		fmt.Printf("%d strings in section %s\n", len(list), name)
		for i, str := range list {
			fmt.Printf("[%4d] %s\n", i, str)
		}
		return nil
	})
}

func eachSection(f *elf.File, fn func(s *elf.Section) error) error {
	sections, err := f.Sections()
	if err != nil {
		return err
	}
	for _, s := range sections {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

// skipKind keeps walking when a section simply holds another record kind.
func skipKind(err error) error {
	var rte *elf.RecordTypeError
	if errors.As(err, &rte) {
		return nil
	}
	return err
}

func printable(data []byte) string {
	for _, b := range data {
		if (b < 0x20 || b > 0x7E) && b != 0 {
			return ""
		}
	}
	for len(data) > 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-1]
	}
	return string(data)
}
