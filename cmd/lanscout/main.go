package main

import (
	"log"

	"github.com/MrSnakeDoc/lanscout/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		log.Fatalf("❌ lanscout: %v", err)
	}
}
