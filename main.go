package main

import (
	"os"

	"github.com/thinkwise-edu/thinkwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
