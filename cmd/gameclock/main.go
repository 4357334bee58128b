package main

import (
	"os"

	"github.com/JesseCoretta/go-gameclock/cmd/gameclock/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
