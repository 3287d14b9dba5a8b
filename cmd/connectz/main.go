package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/iamasit07/connectz/internal/config"
	"github.com/iamasit07/connectz/internal/domain"
	"github.com/iamasit07/connectz/internal/gamefile"
)

const usage = "connectz: Provide one input file"

func main() {
	// stdout carries nothing but the outcome code
	log.SetOutput(io.Discard)
	config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err == nil && cfg.Verbose {
		log.SetOutput(os.Stderr)
	}

	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) != 1 {
		fmt.Fprint(stdout, usage)
		return 1
	}

	outcome := classify(args[0])
	fmt.Fprint(stdout, outcome.Code())
	return 0
}

func classify(path string) domain.Outcome {
	src, err := gamefile.Open(path)
	if err != nil {
		log.Printf("[REPLAY] %v", err)
		return domain.OutcomeOf(err)
	}
	defer src.Close()

	result := domain.Replay(src, domain.WithObserver(logTurn))
	log.Printf("[REPLAY] %s: %s after %d moves (%s)", path, result.Outcome, result.Moves, result.Geometry)
	return result.Outcome
}

func logTurn(t domain.Turn, b *domain.Board) {
	log.Printf("[REPLAY] turn %d player %d column %d (row %d, col %d) won=%t\n%s",
		t.Number, t.Player, t.Column+1, t.Row, t.Column, t.Won, b)
}
