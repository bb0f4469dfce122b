package reporting

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dqagent/internal/config"
	"dqagent/internal/errors"
	"dqagent/internal/quality"
)

// Writer persists rendered reports under the configured reports directory.
type Writer struct {
	logger   *slog.Logger
	paths    config.PathsConfig
	renderer *Renderer
	html     bool
}

// NewWriter creates a report writer. When html is true every run also emits
// an HTML rendering next to the JSON and Markdown files.
func NewWriter(logger *slog.Logger, paths config.PathsConfig, renderer *Renderer, html bool) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger, paths: paths, renderer: renderer, html: html}
}

// JSON marshals the report the way it is written to disk: two-space
// indentation, no HTML escaping of field content.
func JSON(report *quality.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// Save writes the report files for the given report date and returns the
// paths written. Reports are written even for load-failure runs so every
// scheduled day leaves a trace.
func (w *Writer) Save(report *quality.Report, dt time.Time, narrative string) ([]string, error) {
	if err := w.paths.EnsureDirectories(); err != nil {
		return nil, errors.Wrap(err, errors.CodeReportWriteFailed, "failed to prepare report directory")
	}

	data, err := JSON(report)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeReportWriteFailed, "failed to marshal report")
	}

	written := make([]string, 0, 3)

	jsonPath := w.paths.ReportPath(dt, "json")
	if err := os.WriteFile(jsonPath, append(data, '\n'), 0o644); err != nil {
		return nil, errors.Wrap(err, errors.CodeReportWriteFailed, fmt.Sprintf("failed to write %s", jsonPath))
	}
	written = append(written, jsonPath)

	mdPath := w.paths.ReportPath(dt, "md")
	if err := os.WriteFile(mdPath, []byte(w.renderer.Markdown(report, dt, narrative)), 0o644); err != nil {
		return nil, errors.Wrap(err, errors.CodeReportWriteFailed, fmt.Sprintf("failed to write %s", mdPath))
	}
	written = append(written, mdPath)

	if w.html {
		htmlPath := w.paths.ReportPath(dt, "html")
		if err := os.WriteFile(htmlPath, []byte(w.renderer.HTML(report, dt, narrative)), 0o644); err != nil {
			return nil, errors.Wrap(err, errors.CodeReportWriteFailed, fmt.Sprintf("failed to write %s", htmlPath))
		}
		written = append(written, htmlPath)
	}

	w.logger.Info("report files written",
		slog.String("date", dt.Format("2006-01-02")),
		slog.Any("paths", written))

	return written, nil
}
