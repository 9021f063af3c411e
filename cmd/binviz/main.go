package main

import (
	"fmt"
	"os"

	serr "binviz/internal/errors"
	"binviz/internal/log"

	"github.com/joho/godotenv"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	// A missing .env is normal; anything else is worth a note.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not load .env: %v", err)
	}

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+serr.UserMessage(err))
		os.Exit(1)
	}
}
