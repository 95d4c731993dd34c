package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// VisitRecord is the CSV row of one visit.
type VisitRecord struct {
	ID           int64  `csv:"id"`
	Viewer       string `csv:"viewer"`
	Remote       string `csv:"remote"`
	StartedAt    string `csv:"started_at"`
	EndedAt      string `csv:"ended_at"`
	DurationSecs int64  `csv:"duration_secs"`
	Bursts       int    `csv:"bursts"`
}

// Record converts a visit to its CSV row. Times are RFC 3339 in UTC; an
// open visit has an empty end time.
func (v Visit) Record() VisitRecord {
	r := VisitRecord{
		ID:           v.ID,
		Viewer:       v.Viewer,
		Remote:       v.Remote,
		StartedAt:    v.StartedAt.UTC().Format(time.RFC3339),
		DurationSecs: int64(v.Duration() / time.Second),
		Bursts:       v.Bursts,
	}
	if !v.Open() {
		r.EndedAt = v.EndedAt.UTC().Format(time.RFC3339)
	}
	return r
}

// WriteCSV writes visits with a header row.
func WriteCSV(w io.Writer, visits []Visit) error {
	records := make([]VisitRecord, len(visits))
	for i, v := range visits {
		records[i] = v.Record()
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
