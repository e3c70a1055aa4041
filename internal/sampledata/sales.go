// Package sampledata generates the sales CSV fixture used by the
// code-generation demos.
package sampledata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Columns is the fixture header, in file order.
var Columns = []string{"date", "product_id", "price", "units_sold"}

// Options control fixture generation. Identical options produce an
// identical file.
type Options struct {
	Rows     int
	Seed     int64
	Year     int
	Products []string
}

func withDefaults(opts Options) Options {
	if opts.Rows == 0 {
		opts.Rows = 100
	}
	if opts.Year == 0 {
		opts.Year = 2023
	}
	if len(opts.Products) == 0 {
		opts.Products = []string{"P001", "P002", "P003", "P004", "P005", "P006", "P007", "P008", "P009", "P010"}
	}
	return opts
}

// WriteCSV writes the fixture to w: one header row followed by opts.Rows
// sales records drawn from a generator seeded with opts.Seed.
func WriteCSV(w io.Writer, opts Options) error {
	opts = withDefaults(opts)
	rng := rand.New(rand.NewSource(opts.Seed))

	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	start := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < opts.Rows; i++ {
		date := start.AddDate(0, 0, rng.Intn(365))
		product := opts.Products[rng.Intn(len(opts.Products))]
		price := 10 + rng.Float64()*90
		units := 1 + rng.Intn(100)

		record := []string{
			date.Format("2006-01-02"),
			product,
			strconv.FormatFloat(price, 'f', 2, 64),
			strconv.Itoa(units),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the fixture to path, replacing any existing file.
func WriteFile(path string, opts Options) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteCSV(file, opts); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
