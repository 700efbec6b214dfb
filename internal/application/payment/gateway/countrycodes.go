package gateway

// countryNumeric maps ISO 3166-1 alpha-2 codes to the numeric codes the
// gateway expects in address payloads.
var countryNumeric = map[string]string{
	"AT": "040",
	"AU": "036",
	"BE": "056",
	"BG": "100",
	"BR": "076",
	"CA": "124",
	"CH": "756",
	"CN": "156",
	"CY": "196",
	"CZ": "203",
	"DE": "276",
	"DK": "208",
	"EE": "233",
	"ES": "724",
	"FI": "246",
	"FO": "234",
	"FR": "250",
	"GB": "826",
	"GL": "304",
	"GR": "300",
	"HR": "191",
	"HU": "348",
	"IE": "372",
	"IN": "356",
	"IS": "352",
	"IT": "380",
	"JP": "392",
	"KR": "410",
	"LI": "438",
	"LT": "440",
	"LU": "442",
	"LV": "428",
	"MT": "470",
	"MX": "484",
	"NL": "528",
	"NO": "578",
	"NZ": "554",
	"PL": "616",
	"PT": "620",
	"RO": "642",
	"SE": "752",
	"SG": "702",
	"SI": "705",
	"SK": "703",
	"TR": "792",
	"US": "840",
	"ZA": "710",
}

// CountryAlpha2ToNumeric converts an ISO alpha-2 country code to the
// gateway's numeric code. Unknown codes resolve to "0"; the gateway rejects
// the address rather than this service guessing.
func CountryAlpha2ToNumeric(alpha2 string) string {
	if code, ok := countryNumeric[alpha2]; ok {
		return code
	}
	return "0"
}
