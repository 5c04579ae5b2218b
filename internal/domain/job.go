package domain

// SourceDocument describes one input PDF as discovered or validated.
// Invalid marks files that were found but do not parse as PDFs; a scan
// reports them instead of failing the whole listing.
type SourceDocument struct {
	Path      string `json:"path"`
	Pages     int    `json:"pages"`
	SizeBytes int64  `json:"size_bytes"`
	Invalid   bool   `json:"invalid,omitempty"`
}

// MergeJob is a single-use merge request: the ordered input paths and
// one destination. It is never mutated after creation; output pages are
// the concatenation of each input's pages in the order given here.
type MergeJob struct {
	Inputs []string
	Output string
}

// Validate rejects structurally invalid jobs before any I/O happens.
func (j MergeJob) Validate() error {
	if len(j.Inputs) == 0 {
		return &OpError{
			Op:   "job.validate",
			Kind: KindEmptyInput,
			Err:  ErrEmptyInput,
		}
	}
	if j.Output == "" {
		return &OpError{
			Op:   "job.validate",
			Kind: KindWriteFailure,
			Err:  ErrWriteFailure,
		}
	}
	return nil
}
