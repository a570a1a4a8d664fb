package main

import (
	"fmt"
	"os"

	"github.com/rawbytedev/ovr/internal/cmd"
)

func main() {
	root := cmd.NewRootCommand()
	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "vrevents:", err)
		os.Exit(1)
	}
}
