package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/toml"
	"golang.org/x/sync/errgroup"

	"github.com/dr-vortex/elfutils/elf"
)

// Patch is one field edit: an object to address, the field to set and the
// value to write. Sections are addressed by name or index, programs by
// index; the header needs no address.
type Patch struct {
	Object  string `toml:"object"`
	Section string `toml:"section"`
	Index   int    `toml:"index"`
	Field   string `toml:"field"`
	Value   uint64 `toml:"value"`
}

type patchSet struct {
	Patches []Patch `toml:"patch"`
}

func runPatch(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	if cmd.Flag.NArg() < 2 {
		return fmt.Errorf("usage: %s", cmd.Usage)
	}
	set, err := loadPatches(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	var group errgroup.Group
	for _, a := range cmd.Flag.Args()[1:] {
		a := a
		group.Go(func() error {
			return patchFile(a, set.Patches)
		})
	}
	return group.Wait()
}

func loadPatches(file string) (*patchSet, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var set patchSet
	if err := toml.Decode(r, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func patchFile(file string, patches []Patch) error {
	f, err := elf.Open(file)
	if err != nil {
		return err
	}
	for _, p := range patches {
		if err := apply(f, p); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return f.Save(file)
}

func apply(f *elf.File, p Patch) error {
	switch p.Object {
	case "header", "":
		return applyHeader(f.Header(), p)
	case "section":
		s, err := findSection(f, p)
		if err != nil {
			return err
		}
		return applySection(s, p)
	case "program":
		programs, err := f.Programs()
		if err != nil {
			return err
		}
		if p.Index < 0 || p.Index >= len(programs) {
			return fmt.Errorf("no program header at index %d", p.Index)
		}
		return applyProgram(programs[p.Index], p)
	default:
		return fmt.Errorf("unknown patch object %s", p.Object)
	}
}

func findSection(f *elf.File, p Patch) (*elf.Section, error) {
	if p.Section != "" {
		return f.Section(p.Section)
	}
	return f.SectionAt(p.Index)
}

func applyHeader(h *elf.Header, p Patch) error {
	switch p.Field {
	case "type":
		return h.SetType(elf.FileType(p.Value))
	case "machine":
		return h.SetMachine(elf.Machine(p.Value))
	case "version":
		return h.SetVersion(uint32(p.Value))
	case "entry":
		return h.SetEntry(p.Value)
	case "phoff":
		return h.SetPhoff(p.Value)
	case "shoff":
		return h.SetShoff(p.Value)
	case "flags":
		return h.SetFlags(uint32(p.Value))
	case "phnum":
		return h.SetPhnum(uint16(p.Value))
	case "shnum":
		return h.SetShnum(uint16(p.Value))
	case "shstrndx":
		return h.SetShstrndx(uint16(p.Value))
	case "osabi":
		h.SetOSABI(elf.OSABI(p.Value))
		return nil
	default:
		return fmt.Errorf("unknown header field %s", p.Field)
	}
}

func applySection(s *elf.Section, p Patch) error {
	switch p.Field {
	case "name":
		return s.SetNameIndex(uint32(p.Value))
	case "type":
		return s.SetType(elf.SectionType(p.Value))
	case "flags":
		return s.SetFlags(p.Value)
	case "addr":
		return s.SetAddr(p.Value)
	case "offset":
		return s.SetOffset(p.Value)
	case "size":
		return s.SetSize(p.Value)
	case "link":
		return s.SetLink(uint32(p.Value))
	case "info":
		return s.SetInfo(uint32(p.Value))
	case "addralign":
		return s.SetAddrAlign(p.Value)
	case "entsize":
		return s.SetEntSize(p.Value)
	default:
		return fmt.Errorf("unknown section field %s", p.Field)
	}
}

func applyProgram(pr *elf.Program, p Patch) error {
	switch p.Field {
	case "type":
		return pr.SetType(elf.ProgramType(p.Value))
	case "flags":
		return pr.SetFlags(uint32(p.Value))
	case "offset":
		return pr.SetOffset(p.Value)
	case "vaddr":
		return pr.SetVaddr(p.Value)
	case "paddr":
		return pr.SetPaddr(p.Value)
	case "filesz":
		return pr.SetFilesz(p.Value)
	case "memsz":
		return pr.SetMemsz(p.Value)
	case "align":
		return pr.SetAlign(p.Value)
	default:
		return fmt.Errorf("unknown program field %s", p.Field)
	}
}
