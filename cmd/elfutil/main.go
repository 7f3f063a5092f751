package main

import (
	"github.com/midbel/cli"
)

var commands = []*cli.Command{
	{
		Usage:   "info <file...>",
		Short:   "show the file header of ELF binaries",
		Alias:   []string{"show"},
		Run:     runInfo,
		Default: true,
	},
	{
		Usage: "sections <file>",
		Short: "list the section header table",
		Run:   runSections,
	},
	{
		Usage: "segments <file>",
		Short: "list the program header table",
		Run:   runSegments,
	},
	{
		Usage: "symbols <file>",
		Short: "list the symbols of every symbol table section",
		Alias: []string{"syms"},
		Run:   runSymbols,
	},
	{
		Usage: "relocs <file>",
		Short: "list the relocations of every relocation section",
		Run:   runRelocs,
	},
	{
		Usage: "dynamic <file>",
		Short: "list the entries of the dynamic section",
		Run:   runDynamic,
	},
	{
		Usage: "notes <file>",
		Short: "list the notes of every note section",
		Run:   runNotes,
	},
	{
		Usage: "strings <file>",
		Short: "list the contents of every string table section",
		Run:   runStrings,
	},
	{
		Usage: "patch <patch.toml> <file...>",
		Short: "apply field edits from a patch file to binaries in place",
		Alias: []string{"edit"},
		Run:   runPatch,
	},
	{
		Usage: "members <archive.a...>",
		Short: "report the ELF identity of every member of an ar archive",
		Run:   runMembers,
	},
}

func main() {
	cli.RunAndExit(commands, func() {})
}
