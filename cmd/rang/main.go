package main

import (
	"os"

	"github.com/mgpai22/rang/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
