package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gear6io/tablediff/compare"
	"github.com/gear6io/tablediff/pkg/errors"
	"github.com/gear6io/tablediff/utils"
)

// Report-specific error codes
var (
	ErrEncodeFailed = errors.MustNewCode("report.encode_failed")
	ErrWriteFailed  = errors.MustNewCode("report.write_failed")
	ErrRenderFailed = errors.MustNewCode("report.render_failed")
)

// Summary aggregates result classifications for the report header
type Summary struct {
	Total      int `json:"total"`
	Identical  int `json:"identical"`
	Different  int `json:"different"`
	SourceOnly int `json:"source_only"`
	TargetOnly int `json:"target_only"`
}

// Report wraps an ordered comparison result list with run metadata. The
// result list is the wire contract; the report only adds provenance.
type Report struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Source      string                `json:"source"`
	Target      string                `json:"target"`
	Precision   int                   `json:"precision"`
	Summary     Summary               `json:"summary"`
	Results     []*compare.DiffResult `json:"results"`
}

// New assembles a report over the given results
func New(source, target string, precision int, results []*compare.DiffResult) *Report {
	r := &Report{
		RunID:       utils.GenerateULIDString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Target:      target,
		Precision:   precision,
		Results:     results,
	}
	for _, result := range results {
		r.Summary.Total++
		switch result.Status() {
		case "identical":
			r.Summary.Identical++
		case "different":
			r.Summary.Different++
		case "source-only":
			r.Summary.SourceOnly++
		case "target-only":
			r.Summary.TargetOnly++
		}
	}
	return r
}

// WriteJSON encodes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.New(ErrEncodeFailed, "failed to encode report", err)
	}
	return nil
}

// SaveJSON writes the JSON report to a file
func (r *Report) SaveJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New(ErrWriteFailed, "failed to create report file", err).AddContext("path", path)
	}
	defer file.Close()

	return r.WriteJSON(file)
}
