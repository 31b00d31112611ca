package main

import (
	"github.com/joho/godotenv"

	"github.com/dugodofficials-cpu/customer-app-sub000/cli"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cli.Execute()
}
