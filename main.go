package main

import (
	"os"

	"github.com/abhisek/toyvox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
