package main

import (
	"os"

	"github.com/armelyara/TraficDay/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
