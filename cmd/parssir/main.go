package main

import (
	"os"

	"github.com/SatinWukerORIG/parssir/cmd/parssir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
