package types

// RedactionConfig holds settings for the redaction engine.
type RedactionConfig struct {
	// TermsFile is the path to the term list. A .yaml/.yml suffix selects
	// the YAML profile format; anything else is read as newline-delimited
	// plain text, one literal term per line.
	TermsFile string `json:"terms_file" yaml:"terms_file"`

	// CaseSensitive makes term matching case-sensitive. Matching is
	// case-insensitive by default.
	CaseSensitive bool `json:"case_sensitive" yaml:"case_sensitive"`

	// Marker is the replacement literal substituted for every matched term
	// occurrence (default "[REDACTED]").
	Marker string `json:"marker" yaml:"marker"`
}

// BatchConfig holds settings for one batch run.
type BatchConfig struct {
	// InputDir is the directory scanned (non-recursively) for .pdf files.
	// It must already exist.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one text file per successfully processed document.
	// It is created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SkipProcessed consults the ledger and skips documents whose content
	// was already processed by an earlier run.
	SkipProcessed bool `json:"skip_processed" yaml:"skip_processed"`

	// LedgerPath is the SQLite ledger location. Only used when
	// SkipProcessed is set; empty means "<output-dir>/.redactor-ledger.db".
	LedgerPath string `json:"ledger_path,omitempty" yaml:"ledger_path,omitempty"`
}
