package main

import (
	"os"

	"github.com/mmynk/tripsplit/cmd/tripsplit/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		os.Exit(1)
	}
}
