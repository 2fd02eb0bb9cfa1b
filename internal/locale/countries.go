// Package locale carries the locale-specific lookup tables and formatting
// the pipeline needs: German country names, their English display forms,
// German currency formatting and short dates.
package locale

// countriesDE maps the German display name of a country to its English
// display name. The keys double as the lookup table used to detect the
// country line inside a free-form address block.
var countriesDE = map[string]string{
	"Afghanistan":                    "Afghanistan",
	"Ägypten":                        "Egypt",
	"Albanien":                       "Albania",
	"Algerien":                       "Algeria",
	"Andorra":                        "Andorra",
	"Argentinien":                    "Argentina",
	"Armenien":                       "Armenia",
	"Aserbaidschan":                  "Azerbaijan",
	"Äthiopien":                      "Ethiopia",
	"Australien":                     "Australia",
	"Bahrain":                        "Bahrain",
	"Bangladesch":                    "Bangladesh",
	"Belarus":                        "Belarus",
	"Belgien":                        "Belgium",
	"Bolivien":                       "Bolivia",
	"Bosnien und Herzegowina":        "Bosnia and Herzegovina",
	"Brasilien":                      "Brazil",
	"Bulgarien":                      "Bulgaria",
	"Chile":                          "Chile",
	"China":                          "China",
	"Costa Rica":                     "Costa Rica",
	"Dänemark":                       "Denmark",
	"Deutschland":                    "Germany",
	"Dominikanische Republik":        "Dominican Republic",
	"Ecuador":                        "Ecuador",
	"El Salvador":                    "El Salvador",
	"Estland":                        "Estonia",
	"Finnland":                       "Finland",
	"Frankreich":                     "France",
	"Georgien":                       "Georgia",
	"Ghana":                          "Ghana",
	"Griechenland":                   "Greece",
	"Guatemala":                      "Guatemala",
	"Honduras":                       "Honduras",
	"Indien":                         "India",
	"Indonesien":                     "Indonesia",
	"Irak":                           "Iraq",
	"Iran":                           "Iran",
	"Irland":                         "Ireland",
	"Island":                         "Iceland",
	"Israel":                         "Israel",
	"Italien":                        "Italy",
	"Jamaika":                        "Jamaica",
	"Japan":                          "Japan",
	"Jemen":                          "Yemen",
	"Jordanien":                      "Jordan",
	"Kambodscha":                     "Cambodia",
	"Kamerun":                        "Cameroon",
	"Kanada":                         "Canada",
	"Kasachstan":                     "Kazakhstan",
	"Katar":                          "Qatar",
	"Kenia":                          "Kenya",
	"Kirgisistan":                    "Kyrgyzstan",
	"Kolumbien":                      "Colombia",
	"Kroatien":                       "Croatia",
	"Kuba":                           "Cuba",
	"Kuwait":                         "Kuwait",
	"Lettland":                       "Latvia",
	"Libanon":                        "Lebanon",
	"Libyen":                         "Libya",
	"Liechtenstein":                  "Liechtenstein",
	"Litauen":                        "Lithuania",
	"Luxemburg":                      "Luxembourg",
	"Malaysia":                       "Malaysia",
	"Malta":                          "Malta",
	"Marokko":                        "Morocco",
	"Mexiko":                         "Mexico",
	"Moldau":                         "Moldova",
	"Monaco":                         "Monaco",
	"Mongolei":                       "Mongolia",
	"Montenegro":                     "Montenegro",
	"Nepal":                          "Nepal",
	"Neuseeland":                     "New Zealand",
	"Nicaragua":                      "Nicaragua",
	"Niederlande":                    "Netherlands",
	"Nigeria":                        "Nigeria",
	"Nordmazedonien":                 "North Macedonia",
	"Norwegen":                       "Norway",
	"Österreich":                     "Austria",
	"Oman":                           "Oman",
	"Pakistan":                       "Pakistan",
	"Panama":                         "Panama",
	"Paraguay":                       "Paraguay",
	"Peru":                           "Peru",
	"Philippinen":                    "Philippines",
	"Polen":                          "Poland",
	"Portugal":                       "Portugal",
	"Rumänien":                       "Romania",
	"Russland":                       "Russia",
	"Russische Föderation":           "Russian Federation",
	"San Marino":                     "San Marino",
	"Saudi-Arabien":                  "Saudi Arabia",
	"Schweden":                       "Sweden",
	"Schweiz":                        "Switzerland",
	"Senegal":                        "Senegal",
	"Serbien":                        "Serbia",
	"Singapur":                       "Singapore",
	"Slowakei":                       "Slovakia",
	"Slowenien":                      "Slovenia",
	"Spanien":                        "Spain",
	"Sri Lanka":                      "Sri Lanka",
	"Südafrika":                      "South Africa",
	"Südkorea":                       "South Korea",
	"Taiwan":                         "Taiwan",
	"Thailand":                       "Thailand",
	"Tschechien":                     "Czechia",
	"Tschechische Republik":          "Czech Republic",
	"Tunesien":                       "Tunisia",
	"Türkei":                         "Turkey",
	"Turkmenistan":                   "Turkmenistan",
	"Ukraine":                        "Ukraine",
	"Ungarn":                         "Hungary",
	"Uruguay":                        "Uruguay",
	"Usbekistan":                     "Uzbekistan",
	"Venezuela":                      "Venezuela",
	"Vereinigte Arabische Emirate":   "United Arab Emirates",
	"Vereinigte Staaten":             "United States",
	"Vereinigtes Königreich":         "United Kingdom",
	"Vietnam":                        "Vietnam",
	"Zypern":                         "Cyprus",
}

// IsCountry reports whether s is a known German country name.
func IsCountry(s string) bool {
	_, ok := countriesDE[s]
	return ok
}

// CountryIndex returns the index of the first line whose exact text is a
// known German country name, or -1 if no line matches.
func CountryIndex(lines []string) int {
	for i, line := range lines {
		if IsCountry(line) {
			return i
		}
	}
	return -1
}

// TranslateCountry translates a German country name to English. When the
// name is unknown it is returned unchanged and ok is false.
func TranslateCountry(de string) (en string, ok bool) {
	en, ok = countriesDE[de]
	if !ok {
		return de, false
	}
	return en, true
}
