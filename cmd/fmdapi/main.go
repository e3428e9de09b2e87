package main

import (
	"os"

	"github.com/theandychase/fmdapi/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
