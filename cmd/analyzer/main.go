package main

import (
	"os"

	"github.com/Kamar-Folarin/github-analyzer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
