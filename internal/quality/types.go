package quality

// MissingSummary reports per-column missing counts and ratios over the
// table's actual columns at check time.
type MissingSummary struct {
	TotalRows            int                `json:"total_rows"`
	TotalColumns         int                `json:"total_columns"`
	MissingByColumn      map[string]int     `json:"missing_by_column"`
	MissingRatioByColumn map[string]float64 `json:"missing_ratio_by_column"`
}

// SchemaSummary compares the table's columns against the configured
// required set.
type SchemaSummary struct {
	RequiredColumns        []string `json:"required_columns"`
	MissingRequiredColumns []string `json:"missing_required_columns"`
	ExtraColumns           []string `json:"extra_columns"`
}

// DatetimeSummary reports per-column date parse outcomes for the configured
// datetime columns. A column absent from the table counts 0/0.
type DatetimeSummary struct {
	DatetimeColumns   []string       `json:"datetime_columns"`
	ParseSuccessCount map[string]int `json:"parse_success_count"`
	ParseFailCount    map[string]int `json:"parse_fail_count"`
}

// OutlierSummary reports per-column outlier counts for the configured
// numeric columns under IQR fencing.
type OutlierSummary struct {
	Method               string         `json:"method"`
	IQRMultiplier        float64        `json:"iqr_multiplier"`
	OutlierCountByColumn map[string]int `json:"outlier_count_by_column"`
}

// RowIssue pairs one row's original values with the issue marker that put it
// in a report category. RowIndex is the row's original position in the file.
// Exactly one of MissingColumns (missing-row entries) or Issues (duplicate
// and business-rule entries) is populated.
type RowIssue struct {
	RowIndex       int            `json:"row_index"`
	Values         map[string]any `json:"values"`
	MissingColumns []string       `json:"missing_columns,omitempty"`
	Issues         []string       `json:"issues,omitempty"`
}

// RowIssues groups the row-level findings by category. Each list preserves
// original row order.
type RowIssues struct {
	Missing      []RowIssue `json:"missing"`
	Duplicates   []RowIssue `json:"duplicates"`
	BusinessRule []RowIssue `json:"business_rule"`
}

// Report is the structured result of one quality run. When HasFile is false
// the load failed, Message carries the cause, and no check fields are
// populated.
type Report struct {
	HasFile   bool             `json:"has_file"`
	Message   string           `json:"message"`
	Missing   *MissingSummary  `json:"missing,omitempty"`
	Schema    *SchemaSummary   `json:"schema,omitempty"`
	Datetime  *DatetimeSummary `json:"datetime,omitempty"`
	Outlier   *OutlierSummary  `json:"outlier,omitempty"`
	RowIssues *RowIssues       `json:"row_issues,omitempty"`
}

// NewLoadFailureReport builds the terminal report for a file that could not
// be loaded. All check fields stay absent.
func NewLoadFailureReport(message string) *Report {
	return &Report{HasFile: false, Message: message}
}

// Business-rule violation codes, in evaluation order.
const (
	RuleQuantityNonPositive  = "quantity <= 0"
	RuleUnitPriceNonPositive = "unit_price <= 0"
	RuleAmountNonPositive    = "amount <= 0"
	RuleAmountMismatch       = "amount != quantity * unit_price"
	RuleInvalidDateFormat    = "invalid_date_format"
	RuleNonBaseDate          = "non_base_date"
)

// OutlierMethodIQR is the fixed method identifier in OutlierSummary.
const OutlierMethodIQR = "iqr"
