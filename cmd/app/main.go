package main

import (
	"fastfeet/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		log.Fatalf("fastfeet: %v", err)
	}
}
