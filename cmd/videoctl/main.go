package main

import (
	"os"
)

func main() {
	if err := newRootCommand(httpAPI).Execute(); err != nil {
		os.Exit(1)
	}
}
