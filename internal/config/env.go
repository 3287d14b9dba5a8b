package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env from the working directory or its parent. A missing
// file is not an error; the process environment is used as is.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}
}
