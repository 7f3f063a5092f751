package main

import (
	"flag"
	"os"

	"github.com/dr-vortex/elfutils/elf"
)

func main() {
	flag.Parse()
	for _, p := range flag.Args() {
		if err := elf.Debug(p, os.Stdout); err != nil {
			os.Exit(1)
		}
	}
}
