package reporting

import (
	"fmt"
	"html"
	"strings"
	"time"

	"dqagent/internal/quality"
)

// HTML renders the report as a minimal standalone HTML page. Content mirrors
// the Markdown document with go-pretty tables in HTML mode.
func (r *Renderer) HTML(report *quality.Report, dt time.Time, narrative string) string {
	var b strings.Builder

	title := fmt.Sprintf("Data Quality Report - %s", dt.Format("2006-01-02"))
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>body{font-family:sans-serif;margin:2em}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:4px 8px}</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))

	b.WriteString("<h2>1. Status</h2>\n<ul>\n")
	fmt.Fprintf(&b, "<li>File checked: %v</li>\n", report.HasFile)
	fmt.Fprintf(&b, "<li>Message: %s</li>\n", html.EscapeString(report.Message))
	b.WriteString("</ul>\n")

	if report.HasFile {
		b.WriteString("<h2>2. Missing Values</h2>\n<ul>\n")
		fmt.Fprintf(&b, "<li>Total rows: %d</li>\n<li>Total columns: %d</li>\n", report.Missing.TotalRows, report.Missing.TotalColumns)
		b.WriteString("</ul>\n")
		b.WriteString(missingTable(report.Missing, modeHTML))
		b.WriteString("\n")

		if report.Schema != nil {
			b.WriteString("<h2>3. Schema</h2>\n<ul>\n")
			fmt.Fprintf(&b, "<li>Required columns: %s</li>\n", html.EscapeString(strings.Join(report.Schema.RequiredColumns, ", ")))
			fmt.Fprintf(&b, "<li>Missing required columns: %s</li>\n", html.EscapeString(orNone(report.Schema.MissingRequiredColumns)))
			fmt.Fprintf(&b, "<li>Extra columns: %s</li>\n", html.EscapeString(orNone(report.Schema.ExtraColumns)))
			b.WriteString("</ul>\n")
		}

		if report.Datetime != nil {
			b.WriteString("<h2>4. Datetime Columns</h2>\n<ul>\n")
			for _, column := range report.Datetime.DatetimeColumns {
				fmt.Fprintf(&b, "<li>%s: %d parsed, %d failed</li>\n",
					html.EscapeString(column), report.Datetime.ParseSuccessCount[column], report.Datetime.ParseFailCount[column])
			}
			b.WriteString("</ul>\n")
		}

		b.WriteString("<h2>5. Outliers (IQR)</h2>\n<ul>\n")
		fmt.Fprintf(&b, "<li>Method: %s</li>\n<li>IQR multiplier: %g</li>\n", report.Outlier.Method, report.Outlier.IQRMultiplier)
		b.WriteString("</ul>\n")
		b.WriteString(outlierTable(report.Outlier, modeHTML))
		b.WriteString("\n")

		if report.RowIssues != nil {
			b.WriteString("<h2>6. Row Issues</h2>\n")
			r.writeHTMLCategory(&b, "Missing-value rows", report.RowIssues.Missing)
			r.writeHTMLCategory(&b, "Duplicate rows", report.RowIssues.Duplicates)
			r.writeHTMLCategory(&b, "Business-rule violations", report.RowIssues.BusinessRule)
		}
	}

	if narrative != "" {
		b.WriteString("<h2>7. AI Narrative</h2>\n<pre>")
		b.WriteString(html.EscapeString(narrative))
		b.WriteString("</pre>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (r *Renderer) writeHTMLCategory(b *strings.Builder, title string, issues []quality.RowIssue) {
	fmt.Fprintf(b, "<h3>%s (%d)</h3>\n", html.EscapeString(title), len(issues))
	if len(issues) == 0 {
		b.WriteString("<p>none</p>\n")
		return
	}
	shown := issues
	if len(shown) > r.maxRows {
		shown = shown[:r.maxRows]
	}
	b.WriteString(rowIssueTable(shown, modeHTML))
	b.WriteString("\n")
	if len(issues) > r.maxRows {
		fmt.Fprintf(b, "<p>... and %d more rows</p>\n", len(issues)-r.maxRows)
	}
}
