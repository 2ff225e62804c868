package main

import (
	"os"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
