package gender

// names is the locale-independent table. It covers the given names seen in
// German-language shop traffic plus common international names; unknown
// names resolve to Unknown and the caller falls back to a neutral form.
var names = map[string]Gender{
	"alexander":  Male,
	"andreas":    Male,
	"anton":      Male,
	"bernd":      Male,
	"christian":  Male,
	"christoph":  Male,
	"daniel":     Male,
	"david":      Male,
	"dieter":     Male,
	"dirk":       Male,
	"dominik":    Male,
	"erik":       Male,
	"felix":      Male,
	"florian":    Male,
	"frank":      Male,
	"georg":      Male,
	"gerhard":    Male,
	"hans":       Male,
	"heinz":      Male,
	"holger":     Male,
	"jan":        Male,
	"jens":       Male,
	"joachim":    Male,
	"johann":     Male,
	"johannes":   Male,
	"jonas":      Male,
	"jörg":       Male,
	"jürgen":     Male,
	"karl":       Male,
	"klaus":      Male,
	"lukas":      Male,
	"manfred":    Male,
	"manuel":     Male,
	"marcel":     Male,
	"marco":      Male,
	"mario":      Male,
	"markus":     Male,
	"martin":     Male,
	"matthias":   Male,
	"max":        Male,
	"maximilian": Male,
	"michael":    Male,
	"moritz":     Male,
	"norbert":    Male,
	"oliver":     Male,
	"patrick":    Male,
	"paul":       Male,
	"peter":      Male,
	"philipp":    Male,
	"rainer":     Male,
	"ralf":       Male,
	"robert":     Male,
	"rolf":       Male,
	"rudolf":     Male,
	"sebastian":  Male,
	"stefan":     Male,
	"thomas":     Male,
	"tim":        Male,
	"tobias":     Male,
	"ulrich":     Male,
	"uwe":        Male,
	"walter":     Male,
	"werner":     Male,
	"wolfgang":   Male,

	"alexandra": Female,
	"andrea":    Female,
	"angelika":  Female,
	"anja":      Female,
	"anna":      Female,
	"anne":      Female,
	"annika":    Female,
	"barbara":   Female,
	"bettina":   Female,
	"birgit":    Female,
	"brigitte":  Female,
	"christina": Female,
	"christine": Female,
	"claudia":   Female,
	"cornelia":  Female,
	"daniela":   Female,
	"doris":     Female,
	"elke":      Female,
	"erika":     Female,
	"eva":       Female,
	"franziska": Female,
	"gabriele":  Female,
	"gisela":    Female,
	"hannah":    Female,
	"heike":     Female,
	"helga":     Female,
	"ines":      Female,
	"ingrid":    Female,
	"jana":      Female,
	"julia":     Female,
	"jutta":     Female,
	"karin":     Female,
	"katharina": Female,
	"kathrin":   Female,
	"katja":     Female,
	"kerstin":   Female,
	"laura":     Female,
	"lena":      Female,
	"lisa":      Female,
	"manuela":   Female,
	"maria":     Female,
	"marie":     Female,
	"marion":    Female,
	"martina":   Female,
	"melanie":   Female,
	"monika":    Female,
	"nadine":    Female,
	"nicole":    Female,
	"petra":     Female,
	"renate":    Female,
	"sabine":    Female,
	"sandra":    Female,
	"sarah":     Female,
	"silke":     Female,
	"simone":    Female,
	"sonja":     Female,
	"stefanie":  Female,
	"susanne":   Female,
	"tanja":     Female,
	"ulrike":    Female,
	"ursula":    Female,
	"ute":       Female,
	"vanessa":   Female,
	"vera":      Female,

	"alex":      MostlyMale,
	"chris":     MostlyMale,
	"dominique": MostlyFemale,
	"kim":       MostlyFemale,
	"luca":      MostlyMale,
	"nikola":    MostlyFemale,
	"robin":     MostlyMale,
	"sascha":    MostlyMale,
	"toni":      MostlyMale,
}

// countryNames holds per-country usage where it differs from the default
// table. Keys are lowercased country display names as they appear on the
// address's country line.
var countryNames = map[string]map[string]Gender{
	"deutschland": {
		"andrea": Female,
		"luca":   MostlyMale,
		"sascha": Male,
		"toni":   MostlyMale,
	},
	"germany": {
		"andrea": Female,
		"sascha": Male,
	},
	"österreich": {
		"andrea": Female,
		"sascha": Male,
	},
	"schweiz": {
		"andrea": MostlyFemale,
		"luca":   Male,
	},
	"italien": {
		"andrea":   Male,
		"nicola":   Male,
		"simone":   Male,
		"gabriele": Male,
	},
	"italy": {
		"andrea": Male,
		"simone": Male,
	},
	"frankreich": {
		"dominique": Unknown,
		"claude":    MostlyMale,
	},
	"france": {
		"dominique": Unknown,
	},
}
