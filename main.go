package main

import (
	"errors"
	"log"
	"os"

	"github.com/thiagokokada/commit-info/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		if errors.Is(err, cmd.ErrNotRepository) {
			os.Exit(1)
		}
		log.Fatalf("commit-info: %v", err)
	}
}
