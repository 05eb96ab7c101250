package enrich

// fallbackCountries is the shortlist of common music-industry countries a
// hash pick draws from when neither the registry nor the curated table
// knows better. "UK" is kept over "GB" to match stored data.
var fallbackCountries = []string{
	"US", "UK", "CA", "AU", "SE", "KR", "JP", "DE", "FR", "BR", "ES",
}

// artistCountries is a curated exact-name table for artists the fallback
// would obviously get wrong. Versioned static data; extend freely.
var artistCountries = map[string]string{
	"ABBA":           "SE",
	"Adele":          "UK",
	"BTS":            "KR",
	"BLACKPINK":      "KR",
	"Bad Bunny":      "PR",
	"Celine Dion":    "CA",
	"Daft Punk":      "FR",
	"Drake":          "CA",
	"Ed Sheeran":     "UK",
	"Rammstein":      "DE",
	"Rosalía":        "ES",
	"Shakira":        "CO",
	"The Weeknd":     "CA",
	"U2":             "IE",
}
