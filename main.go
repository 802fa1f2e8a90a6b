package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/rogerwa11/portfolio/cmd"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (commit: %s)", version, commit))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
