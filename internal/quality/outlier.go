package quality

import (
	"math"
	"sort"

	"dqagent/internal/dataset"
)

// CheckOutliers counts IQR outliers per configured numeric column. For each
// column the numeric-coercible values form the sample; fences are
// Q1 - k*IQR and Q3 + k*IQR with linearly interpolated quartiles, and a
// value is an outlier iff strictly outside them. Columns absent from the
// table, or with no usable numeric values, count 0.
func (e *Engine) CheckOutliers(t *dataset.Table) *OutlierSummary {
	k := e.opts.IQRMultiplier
	counts := make(map[string]int, len(e.opts.NumericColumns))

	for _, column := range e.opts.NumericColumns {
		counts[column] = 0
		if !t.HasColumn(column) {
			continue
		}

		values := numericValues(t, column)
		if len(values) == 0 {
			continue
		}
		sort.Float64s(values)

		q1 := quantile(values, 0.25)
		q3 := quantile(values, 0.75)
		iqr := q3 - q1
		lower := q1 - k*iqr
		upper := q3 + k*iqr

		outliers := 0
		for _, v := range values {
			if v < lower || v > upper {
				outliers++
			}
		}
		counts[column] = outliers
	}

	return &OutlierSummary{
		Method:               OutlierMethodIQR,
		IQRMultiplier:        k,
		OutlierCountByColumn: counts,
	}
}

// numericValues extracts the column's numeric-coercible values in row order.
// Non-numeric and absent cells are dropped from the sample.
func numericValues(t *dataset.Table, column string) []float64 {
	var values []float64
	for i := 0; i < t.RowCount(); i++ {
		if v, ok := t.Cell(i, column).Number(); ok {
			values = append(values, v)
		}
	}
	return values
}

// quantile computes the q-th quantile of a sorted sample with linear
// interpolation between the two nearest order statistics.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
