package domain

import "time"

// FileInfo records what one input contributed to a merged output.
type FileInfo struct {
	Path      string `json:"path"`
	Pages     int    `json:"pages"`
	SizeBytes int64  `json:"size_bytes"`
}

// MergeReport is the persisted record of one successful merge.
type MergeReport struct {
	Output          string     `json:"output"`
	Files           []FileInfo `json:"files"`
	TotalFiles      int        `json:"total_files"`
	TotalPages      int        `json:"total_pages"`
	OutputSizeBytes int64      `json:"output_size_bytes"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Duration is the wall-clock time the merge took. Zero when either
// timestamp is missing.
func (r MergeReport) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
