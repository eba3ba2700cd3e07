package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"coinflip/game"

	"github.com/fatih/color"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	CSV  Format = "csv"
)

// ParseFormat accepts the names of the supported report formats.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, JSON, CSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q", name)
	}
}

// Report is the final result of an experiment.
type Report struct {
	GameCount int        `json:"game_count"`
	FlipCount int        `json:"flip_count"`
	Tally     game.Tally `json:"tally"`
	Metric    RunMetric  `json:"-"`
}

// WriteReport writes the report once, in the given format.
func WriteReport(w io.Writer, format Format, r Report) error {
	var err error
	switch format {
	case Text, "":
		err = writeText(w, r)
	case JSON:
		err = writeJSON(w, r)
	case CSV:
		err = writeCSV(w, r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}
	return nil
}

func writeText(w io.Writer, r Report) error {
	label := color.New(color.Bold)
	alice := color.New(color.FgGreen)
	bob := color.New(color.FgBlue)
	ties := color.New(color.FgYellow)
	// Only colour output that goes straight to the terminal
	if w != os.Stdout {
		for _, c := range []*color.Color{label, alice, bob, ties} {
			c.DisableColor()
		}
	}

	rows := []struct {
		name  string
		c     *color.Color
		value uint64
	}{
		{"alice_wins", alice, r.Tally.AliceWins},
		{"bob_wins", bob, r.Tally.BobWins},
		{"ties", ties, r.Tally.Ties},
	}

	if _, err := label.Fprintf(w, "%d games of %d flips\n", r.GameCount, r.FlipCount); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := row.c.Fprintf(w, "%-11s %d\n", row.name, row.value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func writeCSV(w io.Writer, r Report) error {
	writer := csv.NewWriter(w)

	header := []string{"game_count", "flip_count", "alice_wins", "bob_wins", "ties"}
	if err := writer.Write(header); err != nil {
		return err
	}
	row := []string{
		strconv.Itoa(r.GameCount),
		strconv.Itoa(r.FlipCount),
		strconv.FormatUint(r.Tally.AliceWins, 10),
		strconv.FormatUint(r.Tally.BobWins, 10),
		strconv.FormatUint(r.Tally.Ties, 10),
	}
	if err := writer.Write(row); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}

type ThroughputRecord struct {
	ID    int
	Tally game.Tally
	RunMetric
}

// WriteThroughput writes one CSV row per throughput run.
func WriteThroughput(w io.Writer, records []ThroughputRecord) error {
	writer := csv.NewWriter(w)

	// Write header
	header := []string{"id", "workers", "trials", "flips", "duration", "flips_per_second", "alice_wins", "bob_wins", "ties"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write throughput header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Workers),
			strconv.FormatInt(record.Trials, 10),
			strconv.FormatInt(record.Flips, 10),
			record.Duration.String(),
			strconv.FormatFloat(record.FlipsPerSecond(), 'f', 0, 64),
			strconv.FormatUint(record.Tally.AliceWins, 10),
			strconv.FormatUint(record.Tally.BobWins, 10),
			strconv.FormatUint(record.Tally.Ties, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write throughput row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
