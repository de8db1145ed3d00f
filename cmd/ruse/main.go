package main

import (
	"os"

	"github.com/xiam/ruse/cmd/ruse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
