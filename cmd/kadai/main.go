package main

import (
	"os"

	"github.com/bnema/mana-kadai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
