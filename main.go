package main

import (
	"os"

	"github.com/hcho112/the-wedding/cmd"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
