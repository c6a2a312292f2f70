package main

import (
	"os"

	"github.com/voltlab/evrange/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
