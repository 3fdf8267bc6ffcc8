package waste

import "strings"

// Category is the closed set of waste types the system knows about.
// Anything else parses to CategoryUnrecognized so callers decide what to do
// with it instead of matching loose strings everywhere.
type Category string

const (
	CategoryPlastic       Category = "Plastic"
	CategoryOrganic       Category = "Organic"
	CategoryPaper         Category = "Paper"
	CategoryMetal         Category = "Metal"
	CategoryEWaste        Category = "E-waste"
	CategoryBiodegradable Category = "Biodegradable"
	CategoryHazardous     Category = "Hazardous"
	CategoryRecyclable    Category = "Recyclable"
	CategoryBiomedical    Category = "Biomedical"
	CategoryUnrecognized  Category = ""
)

// Categories lists every recognized waste type, in display order.
var Categories = []Category{
	CategoryPlastic,
	CategoryOrganic,
	CategoryPaper,
	CategoryMetal,
	CategoryEWaste,
	CategoryBiodegradable,
	CategoryHazardous,
	CategoryRecyclable,
	CategoryBiomedical,
}

// unitWeightKg maps a category to the fixed weight (kg) one detection of it
// contributes to the dashboard total. The constants carry no documented
// derivation and are not a measured average; treat them as calibration values.
// Metal, E-waste and Biodegradable are deliberately absent: they count toward
// the distribution but never toward the weighted total.
var unitWeightKg = map[Category]float64{
	CategoryPlastic:    245.5,
	CategoryOrganic:    380.2,
	CategoryHazardous:  45.3,
	CategoryPaper:      156.8,
	CategoryRecyclable: 198.7,
	CategoryBiomedical: 67.4,
}

// recyclableGroup is the set of distribution names counted as recyclable in
// the recyclable-vs-non-recyclable split.
var recyclableGroup = map[string]bool{
	string(CategoryRecyclable): true,
	string(CategoryPaper):      true,
	string(CategoryPlastic):    true,
}

// ParseCategory matches s against the known categories, ignoring case.
// Unknown values return CategoryUnrecognized.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryUnrecognized
}

func (c Category) String() string {
	return string(c)
}

// UnitWeightKg returns the per-detection weight for c. The second return is
// false for unrecognized categories and for recognized ones outside the
// weight table.
func (c Category) UnitWeightKg() (float64, bool) {
	w, ok := unitWeightKg[c]
	return w, ok
}

// VehicleCategories is the subset of categories a collection vehicle can be
// dedicated to.
var VehicleCategories = []Category{
	CategoryPlastic,
	CategoryOrganic,
	CategoryPaper,
	CategoryHazardous,
	CategoryRecyclable,
}

// ValidVehicleCategory reports whether s names a vehicle waste type.
func ValidVehicleCategory(s string) bool {
	for _, c := range VehicleCategories {
		if s == string(c) {
			return true
		}
	}
	return false
}
