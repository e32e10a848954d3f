package main

import (
	"os"
	"time"

	"kalah/internal/cmd"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := kalah(); err != nil {
		log.Fatal().Err(err).Msg("kalah failed")
	}
}

func kalah() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
