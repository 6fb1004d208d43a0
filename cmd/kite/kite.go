package main

import (
	"os"

	"github.com/elliot-anderson-afk/kite-api-wrapper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
