package teamname

// defaultAliases maps canonical club names to the abbreviations the live
// score page uses for them.
var defaultAliases = map[string][]string{
	"AVV Columbia":       {"Columbia", "Columbia AVV", "AVV Col.", "Col."},
	"Apeldoorn CSV":      {"CSV Apeldoorn", "CSV", "Apeldoorn"},
	"Apeldoornse Boys":   {"Boys Apeldoorn", "A. Boys", "Apeld. Boys"},
	"Victoria Boys":      {"V. Boys", "V.Boys", "Victoria B.", "Vict. Boys"},
	"Robur et Velocitas": {"Robur", "R.e.V.", "Robur/Vel.", "Rev"},
	"ZVV 56":             {"ZVV '56", "ZVV56", "ZVV-56"},
}
