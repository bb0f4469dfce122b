package quality

import (
	"time"

	"dqagent/internal/dataset"
)

// Fixed business-rule fields of the sales schema.
const (
	fieldQuantity  = "quantity"
	fieldUnitPrice = "unit_price"
	fieldAmount    = "amount"
)

// CollectRuleViolations scans every row against the fixed business-rule set
// and returns the rows carrying at least one violation code, in original row
// order, codes in evaluation order. Rules are independent: one row may carry
// several codes.
//
// baseDate is the reference calendar date for RuleNonBaseDate; the zero time
// disables that rule. Absent fields never fire a rule: an absent quantity is
// not non-positive, an absent date is neither invalid nor off-base. The
// amount-consistency rule compares with exact equality, so rounding noise in
// the source data will show up as violations.
func (e *Engine) CollectRuleViolations(t *dataset.Table, baseDate time.Time) []RowIssue {
	issues := []RowIssue{}

	for i := 0; i < t.RowCount(); i++ {
		row := t.Row(i)

		quantity, hasQuantity := row.Cell(fieldQuantity).Number()
		unitPrice, hasUnitPrice := row.Cell(fieldUnitPrice).Number()
		amount, hasAmount := row.Cell(fieldAmount).Number()

		var codes []string
		if hasQuantity && quantity <= 0 {
			codes = append(codes, RuleQuantityNonPositive)
		}
		if hasUnitPrice && unitPrice <= 0 {
			codes = append(codes, RuleUnitPriceNonPositive)
		}
		if hasAmount && amount <= 0 {
			codes = append(codes, RuleAmountNonPositive)
		}
		if hasQuantity && hasUnitPrice && hasAmount && amount != quantity*unitPrice {
			codes = append(codes, RuleAmountMismatch)
		}

		dateCell := row.Cell(e.opts.DateColumn)
		if parsed, ok := parseDate(dateCell); ok {
			if !baseDate.IsZero() && !sameCalendarDay(parsed, baseDate) {
				codes = append(codes, RuleNonBaseDate)
			}
		} else if !dateCell.IsAbsent() {
			codes = append(codes, RuleInvalidDateFormat)
		}

		if len(codes) == 0 {
			continue
		}
		issues = append(issues, RowIssue{
			RowIndex: i,
			Values:   row.Values(),
			Issues:   codes,
		})
	}

	return issues
}
