package quality

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"dqagent/internal/dataset"
)

func numericColumnTable(values []string) *dataset.Table {
	table := dataset.New([]string{"amount"})
	for _, v := range values {
		table.AppendRow([]dataset.Cell{dataset.FromRaw(v)})
	}
	return table
}

func TestCheckOutliers(t *testing.T) {
	// 1..10 plus 100: Q1=3.5, Q3=8.5 under linear interpolation,
	// IQR=5, upper fence 16, so only 100 is out.
	values := make([]string, 0, 11)
	for i := 1; i <= 10; i++ {
		values = append(values, strconv.Itoa(i))
	}
	values = append(values, "100")

	summary := testEngine(t).CheckOutliers(numericColumnTable(values))

	assert.Equal(t, OutlierMethodIQR, summary.Method)
	assert.Equal(t, 1.5, summary.IQRMultiplier)
	assert.Equal(t, 1, summary.OutlierCountByColumn["amount"])
}

func TestCheckOutliersConstantColumn(t *testing.T) {
	// Q1 == Q3 collapses the fences onto the value itself.
	summary := testEngine(t).CheckOutliers(numericColumnTable([]string{"5", "5", "5", "5"}))
	assert.Equal(t, 0, summary.OutlierCountByColumn["amount"])
}

func TestCheckOutliersNonNumericColumn(t *testing.T) {
	summary := testEngine(t).CheckOutliers(numericColumnTable([]string{"red", "green", "blue"}))
	assert.Equal(t, 0, summary.OutlierCountByColumn["amount"])
}

func TestCheckOutliersMixedColumnDropsNonNumeric(t *testing.T) {
	// Non-numeric entries leave the sample entirely.
	values := []string{"1", "2", "3", "4", "oops", "1000"}
	summary := testEngine(t).CheckOutliers(numericColumnTable(values))
	assert.Equal(t, 1, summary.OutlierCountByColumn["amount"])
}

func TestCheckOutliersAbsentColumns(t *testing.T) {
	// Configured numeric columns the table lacks count 0, and every
	// configured column appears in the summary.
	table := dataset.New([]string{"order_id"})
	table.AppendRow([]dataset.Cell{dataset.Text("A-1")})

	summary := testEngine(t).CheckOutliers(table)

	assert.Equal(t, map[string]int{"quantity": 0, "unit_price": 0, "amount": 0}, summary.OutlierCountByColumn)
}

func TestCheckOutliersTwoPointsDegenerate(t *testing.T) {
	// With two points the fences span the sample; IQR fencing cannot flag
	// anything.
	summary := testEngine(t).CheckOutliers(numericColumnTable([]string{"10", "-10"}))
	assert.Equal(t, 0, summary.OutlierCountByColumn["amount"])
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 2.5, quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 3.25, quantile(sorted, 0.75), 1e-12)
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.25))
}
