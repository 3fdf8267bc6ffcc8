package waste

import "math"

// WeightedTotals is the dashboard's per-category weight summary. Total is the
// sum of the six weighted categories, not the raw detection count.
type WeightedTotals struct {
	Plastic    float64 `json:"plastic"`
	Organic    float64 `json:"organic"`
	Hazardous  float64 `json:"hazardous"`
	Paper      float64 `json:"paper"`
	Recyclable float64 `json:"recyclable"`
	Biomedical float64 `json:"biomedical"`
	Total      float64 `json:"total"`
}

// DistributionEntry is one slice of the waste distribution chart.
type DistributionEntry struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// RecyclableSplit partitions the distribution into recyclable
// (Recyclable, Paper, Plastic) and everything else.
type RecyclableSplit struct {
	Recyclable    int `json:"recyclable"`
	NonRecyclable int `json:"nonRecyclable"`
}

// ComputeWeightedTotals accumulates one unit weight per detection whose type
// matches the weight table, case-insensitively. Detections of types outside
// the table are dropped from the totals without warning; that silent
// undercount is a documented property of the figures, not a bug to fix here.
func ComputeWeightedTotals(wasteTypes []string) WeightedTotals {
	var t WeightedTotals

	for _, raw := range wasteTypes {
		c := ParseCategory(raw)
		w, ok := c.UnitWeightKg()
		if !ok {
			continue
		}
		switch c {
		case CategoryPlastic:
			t.Plastic += w
		case CategoryOrganic:
			t.Organic += w
		case CategoryHazardous:
			t.Hazardous += w
		case CategoryPaper:
			t.Paper += w
		case CategoryRecyclable:
			t.Recyclable += w
		case CategoryBiomedical:
			t.Biomedical += w
		}
	}

	t.Total = t.Plastic + t.Organic + t.Hazardous + t.Paper + t.Recyclable + t.Biomedical
	return t
}

// ComputeDistribution groups detections by exact waste_type string and
// reports count and percentage share per distinct value, in first-seen order.
// An empty input divides by 1 rather than reporting "no data"; callers render
// zero rows either way.
func ComputeDistribution(wasteTypes []string) []DistributionEntry {
	counts := make(map[string]int)
	var order []string

	for _, t := range wasteTypes {
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	denominator := len(wasteTypes)
	if denominator == 0 {
		denominator = 1
	}

	entries := make([]DistributionEntry, 0, len(order))
	for _, name := range order {
		value := counts[name]
		pct := float64(value) / float64(denominator) * 100
		entries = append(entries, DistributionEntry{
			Name:       name,
			Value:      value,
			Percentage: math.Round(pct*10) / 10,
		})
	}

	return entries
}

// SplitRecyclable buckets a distribution by exact-name membership in the
// recyclable group. The two sums always add up to the total detection count.
func SplitRecyclable(dist []DistributionEntry) RecyclableSplit {
	var s RecyclableSplit
	for _, e := range dist {
		if recyclableGroup[e.Name] {
			s.Recyclable += e.Value
		} else {
			s.NonRecyclable += e.Value
		}
	}
	return s
}
