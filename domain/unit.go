package domain

// Units is the closed set of measurement units accepted for pantry items,
// recipe ingredients and shopping list items. No conversion between units is
// ever performed; (name, unit) pairs match exactly or not at all.
var Units = []string{
	"piece",
	"g",
	"kg",
	"ml",
	"l",
	"tablespoon",
	"teaspoon",
	"cup",
	"package",
}

func IsValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}
