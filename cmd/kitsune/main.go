package main

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/FinnBaltazar1111/kitsune/internal/cli"
)

//go:embed configs
var configFS embed.FS

func main() {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	if err := cli.NewRootCommand(fsys).Execute(); err != nil {
		os.Exit(1)
	}
}
