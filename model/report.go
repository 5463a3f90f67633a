package model

import "time"

// Report records the outcome of solving one instance within a batch run.
type Report struct {
	ID        string        `json:"id"`
	RunID     string        `json:"runId"`
	Instance  string        `json:"instance"`
	Variant   string        `json:"variant"`
	Libraries int           `json:"libraries"`
	Books     int           `json:"books"`
	Score     int64         `json:"score"`
	Output    string        `json:"output,omitempty"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"startedAt"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Failed reports whether the instance could not be solved.
func (r *Report) Failed() bool {
	return r.Error != ""
}
