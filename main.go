package main

import (
	"os"

	"github.com/upjobs/upjobs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
