package main

import (
	"os"

	"github.com/craftctl-dev/craftctl/pkg/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
