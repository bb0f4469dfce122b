package reporting

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"dqagent/internal/quality"
)

// tableMode selects the output dialect of the shared section builders.
type tableMode int

const (
	modeMarkdown tableMode = iota
	modeHTML
)

// Renderer turns a quality report into human-readable documents. Row-issue
// tables are truncated at maxRows entries per category with an overflow
// note.
type Renderer struct {
	maxRows int
}

// NewRenderer creates a renderer. A non-positive maxRows falls back to 20.
func NewRenderer(maxRows int) *Renderer {
	if maxRows <= 0 {
		maxRows = 20
	}
	return &Renderer{maxRows: maxRows}
}

// Markdown renders the report as a Markdown document for the given report
// date. narrative, when non-empty, is appended verbatim as the AI section;
// the caller substitutes the degraded inline note on narrative failure.
func (r *Renderer) Markdown(report *quality.Report, dt time.Time, narrative string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data Quality Report - %s\n\n", dt.Format("2006-01-02"))
	b.WriteString("## 1. Status\n\n")
	fmt.Fprintf(&b, "- File checked: %v\n", report.HasFile)
	fmt.Fprintf(&b, "- Message: %s\n", report.Message)

	if !report.HasFile {
		return b.String()
	}

	b.WriteString("\n## 2. Missing Values\n\n")
	fmt.Fprintf(&b, "- Total rows: %d\n", report.Missing.TotalRows)
	fmt.Fprintf(&b, "- Total columns: %d\n\n", report.Missing.TotalColumns)
	b.WriteString(missingTable(report.Missing, modeMarkdown))
	b.WriteString("\n")

	if report.Schema != nil {
		b.WriteString("\n## 3. Schema\n\n")
		fmt.Fprintf(&b, "- Required columns: %s\n", strings.Join(report.Schema.RequiredColumns, ", "))
		fmt.Fprintf(&b, "- Missing required columns: %s\n", orNone(report.Schema.MissingRequiredColumns))
		fmt.Fprintf(&b, "- Extra columns: %s\n", orNone(report.Schema.ExtraColumns))
	}

	if report.Datetime != nil {
		b.WriteString("\n## 4. Datetime Columns\n\n")
		for _, column := range report.Datetime.DatetimeColumns {
			fmt.Fprintf(&b, "- %s: %d parsed, %d failed\n",
				column, report.Datetime.ParseSuccessCount[column], report.Datetime.ParseFailCount[column])
		}
	}

	b.WriteString("\n## 5. Outliers (IQR)\n\n")
	fmt.Fprintf(&b, "- Method: %s\n", report.Outlier.Method)
	fmt.Fprintf(&b, "- IQR multiplier: %g\n\n", report.Outlier.IQRMultiplier)
	b.WriteString(outlierTable(report.Outlier, modeMarkdown))
	b.WriteString("\n")

	if report.RowIssues != nil {
		b.WriteString("\n## 6. Row Issues\n")
		r.writeCategory(&b, "Missing-value rows", report.RowIssues.Missing, modeMarkdown)
		r.writeCategory(&b, "Duplicate rows", report.RowIssues.Duplicates, modeMarkdown)
		r.writeCategory(&b, "Business-rule violations", report.RowIssues.BusinessRule, modeMarkdown)
	}

	if narrative != "" {
		b.WriteString("\n## 7. AI Narrative\n\n")
		b.WriteString(narrative)
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) writeCategory(b *strings.Builder, title string, issues []quality.RowIssue, mode tableMode) {
	fmt.Fprintf(b, "\n### %s (%d)\n\n", title, len(issues))
	if len(issues) == 0 {
		b.WriteString("- none\n")
		return
	}

	shown := issues
	if len(shown) > r.maxRows {
		shown = shown[:r.maxRows]
	}
	b.WriteString(rowIssueTable(shown, mode))
	b.WriteString("\n")
	if len(issues) > r.maxRows {
		fmt.Fprintf(b, "\n... and %d more rows\n", len(issues)-r.maxRows)
	}
}

// missingTable renders the per-column missing counts in sorted column order.
func missingTable(summary *quality.MissingSummary, mode tableMode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Column", "Missing", "Ratio"})
	for _, column := range sortedKeys(summary.MissingByColumn) {
		w.AppendRow(table.Row{
			column,
			summary.MissingByColumn[column],
			fmt.Sprintf("%.2f%%", summary.MissingRatioByColumn[column]*100),
		})
	}
	return render(w, mode)
}

func outlierTable(summary *quality.OutlierSummary, mode tableMode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Column", "Outliers"})
	for _, column := range sortedKeys(summary.OutlierCountByColumn) {
		w.AppendRow(table.Row{column, summary.OutlierCountByColumn[column]})
	}
	return render(w, mode)
}

// rowIssueTable renders one issue category. Value columns come from the
// first row's value set in sorted order; every row in a category shares the
// same shape.
func rowIssueTable(issues []quality.RowIssue, mode tableMode) string {
	columns := sortedKeys(issues[0].Values)

	w := table.NewWriter()
	header := table.Row{"Row", "Issues"}
	for _, column := range columns {
		header = append(header, column)
	}
	w.AppendHeader(header)

	for _, issue := range issues {
		marker := issue.Issues
		if len(issue.MissingColumns) > 0 {
			marker = issue.MissingColumns
		}
		row := table.Row{issue.RowIndex, strings.Join(marker, "; ")}
		for _, column := range columns {
			row = append(row, cellText(issue.Values[column]))
		}
		w.AppendRow(row)
	}
	return render(w, mode)
}

func render(w table.Writer, mode tableMode) string {
	if mode == modeHTML {
		return w.RenderHTML()
	}
	return w.RenderMarkdown()
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprintf("%v", v)
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
