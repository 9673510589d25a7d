package main

import (
	"os"

	"dashboard_seed/internal/cli"
)

func main() {
	if err := cli.Execute(cli.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
