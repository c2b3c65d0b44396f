package grid

// Placeholder symbols stand in for the collapsed f-block rows.
const (
	Lanthanides = "Ln"
	Actinides   = "An"
)

// IsPlaceholder reports whether symbol is one of the two collapsed-category
// markers.
func IsPlaceholder(symbol string) bool {
	return symbol == Lanthanides || symbol == Actinides
}

// PlaceholderName returns the category name a placeholder stands for.
func PlaceholderName(symbol string) string {
	switch symbol {
	case Lanthanides:
		return "Lanthanides"
	case Actinides:
		return "Actinides"
	}
	return ""
}

// PeriodicTable is the standard 18-column layout with the f-block
// collapsed into Ln and An.
var PeriodicTable = []Entry{
	{0, 0, "H"}, {0, 17, "He"},

	{1, 0, "Li"}, {1, 1, "Be"}, {1, 12, "B"}, {1, 13, "C"},
	{1, 14, "N"}, {1, 15, "O"}, {1, 16, "F"}, {1, 17, "Ne"},

	{2, 0, "Na"}, {2, 1, "Mg"}, {2, 12, "Al"}, {2, 13, "Si"},
	{2, 14, "P"}, {2, 15, "S"}, {2, 16, "Cl"}, {2, 17, "Ar"},

	{3, 0, "K"}, {3, 1, "Ca"}, {3, 2, "Sc"}, {3, 3, "Ti"}, {3, 4, "V"},
	{3, 5, "Cr"}, {3, 6, "Mn"}, {3, 7, "Fe"}, {3, 8, "Co"},
	{3, 9, "Ni"}, {3, 10, "Cu"}, {3, 11, "Zn"},
	{3, 12, "Ga"}, {3, 13, "Ge"}, {3, 14, "As"}, {3, 15, "Se"},
	{3, 16, "Br"}, {3, 17, "Kr"},

	{4, 0, "Rb"}, {4, 1, "Sr"}, {4, 2, "Y"}, {4, 3, "Zr"}, {4, 4, "Nb"},
	{4, 5, "Mo"}, {4, 6, "Tc"}, {4, 7, "Ru"}, {4, 8, "Rh"},
	{4, 9, "Pd"}, {4, 10, "Ag"}, {4, 11, "Cd"},
	{4, 12, "In"}, {4, 13, "Sn"}, {4, 14, "Sb"}, {4, 15, "Te"},
	{4, 16, "I"}, {4, 17, "Xe"},

	{5, 0, "Cs"}, {5, 1, "Ba"}, {5, 2, Lanthanides}, {5, 3, "Hf"}, {5, 4, "Ta"},
	{5, 5, "W"}, {5, 6, "Re"}, {5, 7, "Os"}, {5, 8, "Ir"},
	{5, 9, "Pt"}, {5, 10, "Au"}, {5, 11, "Hg"},
	{5, 12, "Tl"}, {5, 13, "Pb"}, {5, 14, "Bi"}, {5, 15, "Po"},
	{5, 16, "At"}, {5, 17, "Rn"},

	{6, 0, "Fr"}, {6, 1, "Ra"}, {6, 2, Actinides},
}
