package main

import (
	"os"

	"github.com/custodia-labs/faster-beamer/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
