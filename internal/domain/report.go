package domain

import "time"

// FileStatus classifies the outcome of one file in a batch.
type FileStatus string

const (
	StatusOK     FileStatus = "ok"
	StatusFailed FileStatus = "failed"
)

// FileResult records the outcome of posterizing one input file.
type FileResult struct {
	Input     string     `json:"input"`
	Output    string     `json:"output,omitempty"`
	Status    FileStatus `json:"status"`
	Error     string     `json:"error,omitempty"`
	ErrorKind ErrorKind  `json:"error_kind,omitempty"`
	LatencyMS int64      `json:"latency_ms"`
}

// BatchReport aggregates a full run: the resolved configuration plus one
// result per input file. Persisted as a JSON artifact when requested.
type BatchReport struct {
	Mode      string       `json:"mode"`
	Levels    []int        `json:"levels,omitempty"`
	Split     int          `json:"split,omitempty"`
	Keep      bool         `json:"keep,omitempty"`
	Colors    []string     `json:"colors,omitempty"`
	Ramp      []uint8      `json:"ramp"`
	StartedAt time.Time    `json:"started_at"`
	EndedAt   time.Time    `json:"ended_at"`
	Results   []FileResult `json:"results"`
}

// Failures counts the files that did not produce an output.
func (r BatchReport) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Status != StatusOK {
			n++
		}
	}
	return n
}
