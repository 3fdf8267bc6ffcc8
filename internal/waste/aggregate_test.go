package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWeightedTotals_KnownCategories(t *testing.T) {
	// Two plastic detections and one organic
	totals := ComputeWeightedTotals([]string{"Plastic", "Plastic", "Organic"})

	assert.InDelta(t, 491.0, totals.Plastic, 0.0001)
	assert.InDelta(t, 380.2, totals.Organic, 0.0001)
	assert.InDelta(t, 871.2, totals.Total, 0.0001)
	assert.Zero(t, totals.Hazardous)
	assert.Zero(t, totals.Paper)
	assert.Zero(t, totals.Recyclable)
	assert.Zero(t, totals.Biomedical)
}

func TestComputeWeightedTotals_CaseInsensitive(t *testing.T) {
	upper := ComputeWeightedTotals([]string{"PLASTIC", "plastic"})
	mixed := ComputeWeightedTotals([]string{"Plastic", "Plastic"})

	assert.Equal(t, mixed, upper)
}

func TestComputeWeightedTotals_UnweightedCategoriesExcluded(t *testing.T) {
	// Biomedical is in the weight table, Glass is not known at all, and
	// Metal is known but carries no weight. Only Biomedical contributes.
	totals := ComputeWeightedTotals([]string{"Biomedical", "Glass", "Metal"})

	assert.InDelta(t, 67.4, totals.Biomedical, 0.0001)
	assert.InDelta(t, 67.4, totals.Total, 0.0001)
}

func TestComputeWeightedTotals_TotalIsSumOfCategories(t *testing.T) {
	inputs := [][]string{
		{},
		{"Plastic"},
		{"Plastic", "Organic", "Hazardous", "Paper", "Recyclable", "Biomedical"},
		{"Plastic", "Plastic", "E-waste", "Biodegradable", "organic", "unknown"},
	}

	for _, in := range inputs {
		totals := ComputeWeightedTotals(in)
		sum := totals.Plastic + totals.Organic + totals.Hazardous +
			totals.Paper + totals.Recyclable + totals.Biomedical
		assert.InDelta(t, sum, totals.Total, 0.0001)
	}
}

func TestComputeWeightedTotals_OrderIndependent(t *testing.T) {
	a := ComputeWeightedTotals([]string{"Plastic", "Organic", "Paper"})
	b := ComputeWeightedTotals([]string{"Paper", "Plastic", "Organic"})

	assert.Equal(t, a, b)
}

func TestComputeWeightedTotals_EmptyInput(t *testing.T) {
	totals := ComputeWeightedTotals(nil)

	assert.Equal(t, WeightedTotals{}, totals)
}

func TestComputeDistribution_CountsAndPercentages(t *testing.T) {
	dist := ComputeDistribution([]string{"Plastic", "Plastic", "Organic"})

	assert.Len(t, dist, 2)
	assert.Equal(t, DistributionEntry{Name: "Plastic", Value: 2, Percentage: 66.7}, dist[0])
	assert.Equal(t, DistributionEntry{Name: "Organic", Value: 1, Percentage: 33.3}, dist[1])
}

func TestComputeDistribution_PercentagesSumToHundred(t *testing.T) {
	dist := ComputeDistribution([]string{
		"Plastic", "Plastic", "Organic", "Paper", "Paper", "Paper", "Metal",
	})

	var sum float64
	for _, e := range dist {
		sum += e.Percentage
	}
	// Each entry rounds to one decimal, so allow 0.1 slack per category
	assert.InDelta(t, 100.0, sum, 0.1*float64(len(dist)))
}

func TestComputeDistribution_GroupsByExactString(t *testing.T) {
	// Distribution grouping is case-sensitive, unlike the weighted totals
	dist := ComputeDistribution([]string{"Plastic", "plastic"})

	assert.Len(t, dist, 2)
	assert.Equal(t, 1, dist[0].Value)
	assert.Equal(t, 1, dist[1].Value)
}

func TestComputeDistribution_EmptyInput(t *testing.T) {
	// Denominator defaults to 1, so an empty list yields no entries rather
	// than a division by zero
	dist := ComputeDistribution(nil)

	assert.Empty(t, dist)
}

func TestComputeDistribution_Idempotent(t *testing.T) {
	in := []string{"Plastic", "Organic", "Plastic", "Biomedical"}

	assert.Equal(t, ComputeDistribution(in), ComputeDistribution(in))
}

func TestSplitRecyclable_BucketsSumToTotal(t *testing.T) {
	in := []string{"Plastic", "Recyclable", "Paper", "Organic", "Hazardous", "Plastic"}
	dist := ComputeDistribution(in)
	split := SplitRecyclable(dist)

	assert.Equal(t, 4, split.Recyclable)
	assert.Equal(t, 2, split.NonRecyclable)
	assert.Equal(t, len(in), split.Recyclable+split.NonRecyclable)
}

func TestSplitRecyclable_UnrecognizedCountsAsNonRecyclable(t *testing.T) {
	dist := ComputeDistribution([]string{"Biomedical", "Glass"})
	split := SplitRecyclable(dist)

	assert.Equal(t, 0, split.Recyclable)
	assert.Equal(t, 2, split.NonRecyclable)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryPlastic, ParseCategory("plastic"))
	assert.Equal(t, CategoryEWaste, ParseCategory("e-waste"))
	assert.Equal(t, CategoryUnrecognized, ParseCategory("Glass"))
	assert.Equal(t, CategoryUnrecognized, ParseCategory(""))
}

func TestUnitWeightKg(t *testing.T) {
	w, ok := CategoryPlastic.UnitWeightKg()
	assert.True(t, ok)
	assert.InDelta(t, 245.5, w, 0.0001)

	_, ok = CategoryMetal.UnitWeightKg()
	assert.False(t, ok)

	_, ok = CategoryUnrecognized.UnitWeightKg()
	assert.False(t, ok)
}
