package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/sampledata"
)

func main() {
	output := flag.String("output", "data/sales.csv", "Output CSV relative path")
	rows := flag.Int("rows", 100, "Number of data rows to generate")
	seed := flag.Int64("seed", 0, "Random seed (same seed, same file)")
	year := flag.Int("year", 2023, "Calendar year for the date column")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *rows < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sampledata [-output <file>] [-rows <n>] [-seed <n>] [-year <n>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := sampledata.Options{Rows: *rows, Seed: *seed, Year: *year}
	if err := sampledata.WriteFile(*output, opts); err != nil {
		log.Error().Err(err).Msg("Sample data generation failed")
		os.Exit(1)
	}

	log.Info().Str("file", *output).Int("rows", *rows).Msg("Wrote sample sales data")
}
