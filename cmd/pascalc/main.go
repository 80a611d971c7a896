package main

import (
	"os"

	"github.com/babych/go-pascal/cmd/pascalc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
