package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kastheco/matiz/cmd"
	"github.com/kastheco/matiz/ui"
)

func main() {
	// A missing .env is fine; the environment may already carry MATIZ_* values.
	_ = godotenv.Load()

	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
