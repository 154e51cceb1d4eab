// Package telemetry records per-generation population census data.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"torus-life/internal/sims/life"
)

// Record is one census row.
type Record struct {
	Seed       int64   `csv:"seed"`
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	Density    float64 `csv:"density"`
}

// NewRecord builds a census row from a completed step.
func NewRecord(seed int64, cells int, s life.StepStats) Record {
	r := Record{
		Seed:       seed,
		Generation: s.Generation,
		Population: s.Population,
		Births:     s.Births,
		Deaths:     s.Deaths,
	}
	if cells > 0 {
		r.Density = float64(s.Population) / float64(cells)
	}
	return r
}

// Recorder appends census rows to a CSV stream. A nil Recorder discards
// everything.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewRecorder writes census.csv into dir. Returns nil if dir is empty.
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "census.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating census.csv: %w", err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// NewWriterRecorder writes census rows to w.
func NewWriterRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Write appends records, emitting the header on the first call.
func (r *Recorder) Write(records ...Record) error {
	if r == nil || len(records) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
