package geo

import "strings"

// countryNames maps ISO 3166-1 alpha-2 codes to English country names.
// Covers every country appearing in the bundled city catalog plus the
// common lookup set.
var countryNames = map[string]string{
	"AE": "United Arab Emirates",
	"AF": "Afghanistan",
	"AL": "Albania",
	"AM": "Armenia",
	"AO": "Angola",
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BG": "Bulgaria",
	"BO": "Bolivia",
	"BR": "Brazil",
	"BY": "Belarus",
	"CA": "Canada",
	"CD": "DR Congo",
	"CH": "Switzerland",
	"CI": "Ivory Coast",
	"CL": "Chile",
	"CM": "Cameroon",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"ES": "Spain",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FR": "France",
	"GB": "United Kingdom",
	"GE": "Georgia",
	"GH": "Ghana",
	"GR": "Greece",
	"GT": "Guatemala",
	"HK": "Hong Kong",
	"HN": "Honduras",
	"HR": "Croatia",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IQ": "Iraq",
	"IR": "Iran",
	"IS": "Iceland",
	"IT": "Italy",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KH": "Cambodia",
	"KR": "South Korea",
	"KW": "Kuwait",
	"KZ": "Kazakhstan",
	"LB": "Lebanon",
	"LK": "Sri Lanka",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"LY": "Libya",
	"MA": "Morocco",
	"MD": "Moldova",
	"ME": "Montenegro",
	"MG": "Madagascar",
	"MK": "North Macedonia",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MT": "Malta",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NG": "Nigeria",
	"NI": "Nicaragua",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PA": "Panama",
	"PE": "Peru",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PT": "Portugal",
	"PY": "Paraguay",
	"QA": "Qatar",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russia",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SD": "Sudan",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"SN": "Senegal",
	"SV": "El Salvador",
	"SY": "Syria",
	"TH": "Thailand",
	"TN": "Tunisia",
	"TR": "Turkey",
	"TW": "Taiwan",
	"TZ": "Tanzania",
	"UA": "Ukraine",
	"UG": "Uganda",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VE": "Venezuela",
	"VN": "Vietnam",
	"YE": "Yemen",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}

// countryContinents groups country codes by continent.
var countryContinents = map[string]string{
	"Africa": "DZ AO CM CD CI EG ET GH KE LY MA MG MZ NG RW SD SN TN TZ UG ZA ZM ZW",
	"Asia": "AE AF AM AZ BD CN CY GE HK ID IL IN IQ IR JO JP KH KR KW KZ LB LK" +
		" MM MN MY NP OM PH PK QA SA SG SY TH TR TW UZ VN YE",
	"Europe": "AL AT BA BE BG BY CH CZ DE DK EE ES FI FR GB GR HR HU IE IS IT" +
		" LT LU LV MD ME MK MT NL NO PL PT RO RS RU SE SI SK UA",
	"North America": "CA CR CU DO GT HN JM MX NI PA SV US",
	"South America": "AR BO BR CL CO EC PE PY UY VE",
	"Oceania":       "AU FJ NZ PG",
}

// continentByCountry is the inverted index built from countryContinents.
var continentByCountry = func() map[string]string {
	m := make(map[string]string)
	for continent, codes := range countryContinents {
		for _, code := range strings.Fields(codes) {
			m[code] = continent
		}
	}
	return m
}()

// CountryName resolves an ISO country code to its English name.
// Unknown codes are returned as-is so labels stay usable.
func CountryName(code string) string {
	if name, ok := countryNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// CountryCode resolves an English country name back to its ISO code.
// Returns "" when the name is unknown.
func CountryCode(name string) string {
	for code, n := range countryNames {
		if strings.EqualFold(n, name) {
			return code
		}
	}
	return ""
}

// ContinentOf returns the continent label for a country code, or "" when
// the code is not in the grouping table.
func ContinentOf(code string) string {
	return continentByCountry[strings.ToUpper(code)]
}
