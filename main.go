package main

import (
	"os"

	"github.com/homeworkgoat/goat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
