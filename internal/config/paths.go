package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// filenameDateFormat is the date layout embedded in the daily file names,
// e.g. sales_2025_10_31.csv and quality_report_2025_10_31.json.
const filenameDateFormat = "2006_01_02"

// PathsConfig is the single source of truth for where the agent reads and
// writes files. Relative paths resolve against the working directory.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// SalesCSVPath returns the expected CSV path for the given date.
func (p PathsConfig) SalesCSVPath(dt time.Time) string {
	return filepath.Join(p.DataDir, fmt.Sprintf("sales_%s.csv", dt.Format(filenameDateFormat)))
}

// SalesXLSXPath returns the Excel fallback path for the given date.
func (p PathsConfig) SalesXLSXPath(dt time.Time) string {
	return filepath.Join(p.DataDir, fmt.Sprintf("sales_%s.xlsx", dt.Format(filenameDateFormat)))
}

// ReportPath returns the report output path for the given date and
// extension ("json", "md", "html").
func (p PathsConfig) ReportPath(dt time.Time, ext string) string {
	return filepath.Join(p.ReportsDir, fmt.Sprintf("quality_report_%s.%s", dt.Format(filenameDateFormat), ext))
}

// EnsureDirectories creates the output directories the agent writes to.
// The data directory is intentionally not created: its absence is a
// reportable outcome, not something to paper over.
func (p PathsConfig) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
