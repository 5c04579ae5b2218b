package domain

// Config represents the minimal pdfmerge configuration loaded from pdfmerge.yaml.
type Config struct {
	Paths      PathsConfig
	Validation ValidationConfig
	Reports    ReportsConfig
}

type PathsConfig struct {
	InputDir   string
	OutputDir  string
	ReportsDir string
}

type ValidationConfig struct {
	// Relaxed tolerates the structural quirks many generators produce.
	Relaxed bool
}

type ReportsConfig struct {
	Enabled bool
	Index   bool
}

// DefaultConfig provides sane defaults if pdfmerge.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			InputDir:   "input",
			OutputDir:  "output",
			ReportsDir: "reports",
		},
		Validation: ValidationConfig{Relaxed: true},
		Reports:    ReportsConfig{Enabled: true, Index: false},
	}
}
