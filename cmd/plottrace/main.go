package main

import (
	"log"
	"os"

	"github.com/uluyol/plottrace/internal/app"
	"github.com/uluyol/plottrace/viewer"
)

func main() {
	log.SetPrefix("plottrace: ")
	log.SetFlags(0)

	opts, err := app.ParseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if err == app.ErrUsage {
		os.Exit(1)
	}
	if err != nil {
		os.Exit(2)
	}

	if err := app.Run(opts, viewer.Viewer{}); err != nil {
		log.Fatal(err)
	}
}
