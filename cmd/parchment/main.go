package main

import (
	"github.com/joho/godotenv"

	"github.com/parchment-labs/parchment-cli/internal/adapters/driving/cli"
)

func main() {
	// Optional .env with provider API keys; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
