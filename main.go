package main

import (
	"os"

	"github.com/alantheprice/calcmenu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
