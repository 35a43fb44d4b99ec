package main

import (
	"os"
	"trip-bot-service/internal/config"
	_ "time/tzdata"
)

func main() {
	config.LoadDotenv()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
