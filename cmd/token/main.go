package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/iamasit07/connectz/internal/config"
	"github.com/iamasit07/connectz/pkg/auth"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	os.Exit(run(os.Args[1:], cfg, os.Stdout, os.Stderr))
}

func run(args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: token <client>")
		return 2
	}

	token, err := auth.GenerateClientToken(cfg.JWTSecret, args[0], cfg.TokenTTL())
	if err != nil {
		fmt.Fprintf(stderr, "token: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, token)
	return 0
}
