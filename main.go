package main

import (
	"os"

	"github.com/mholweger/dualmeet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
