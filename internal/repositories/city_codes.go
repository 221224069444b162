package repositories

import "strings"

// CityCode is one row of the flight-search lookup table.
type CityCode struct {
	Code        string
	Country     string
	DisplayName string
}

// cityCodes maps normalized city names (including common spelling variants)
// to the metropolitan-area codes the flight search accepts.
var cityCodes = map[string]CityCode{
	"london":         {"LON", "GB", "London"},
	"paris":          {"PAR", "FR", "Paris"},
	"milan":          {"MIL", "IT", "Milan"},
	"milano":         {"MIL", "IT", "Milan"},
	"rome":           {"ROM", "IT", "Rome"},
	"roma":           {"ROM", "IT", "Rome"},
	"barcelona":      {"BCN", "ES", "Barcelona"},
	"madrid":         {"MAD", "ES", "Madrid"},
	"lisbon":         {"LIS", "PT", "Lisbon"},
	"lisboa":         {"LIS", "PT", "Lisbon"},
	"porto":          {"OPO", "PT", "Porto"},
	"amsterdam":      {"AMS", "NL", "Amsterdam"},
	"brussels":       {"BRU", "BE", "Brussels"},
	"berlin":         {"BER", "DE", "Berlin"},
	"munich":         {"MUC", "DE", "Munich"},
	"frankfurt":      {"FRA", "DE", "Frankfurt"},
	"vienna":         {"VIE", "AT", "Vienna"},
	"wien":           {"VIE", "AT", "Vienna"},
	"prague":         {"PRG", "CZ", "Prague"},
	"praha":          {"PRG", "CZ", "Prague"},
	"budapest":       {"BUD", "HU", "Budapest"},
	"warsaw":         {"WAW", "PL", "Warsaw"},
	"krakow":         {"KRK", "PL", "Krakow"},
	"cracow":         {"KRK", "PL", "Krakow"},
	"athens":         {"ATH", "GR", "Athens"},
	"istanbul":       {"IST", "TR", "Istanbul"},
	"dublin":         {"DUB", "IE", "Dublin"},
	"edinburgh":      {"EDI", "GB", "Edinburgh"},
	"copenhagen":     {"CPH", "DK", "Copenhagen"},
	"stockholm":      {"STO", "SE", "Stockholm"},
	"oslo":           {"OSL", "NO", "Oslo"},
	"helsinki":       {"HEL", "FI", "Helsinki"},
	"zurich":         {"ZRH", "CH", "Zurich"},
	"geneva":         {"GVA", "CH", "Geneva"},
	"venice":         {"VCE", "IT", "Venice"},
	"venezia":        {"VCE", "IT", "Venice"},
	"florence":       {"FLR", "IT", "Florence"},
	"firenze":        {"FLR", "IT", "Florence"},
	"nice":           {"NCE", "FR", "Nice"},
	"new york":       {"NYC", "US", "New York"},
	"new york city":  {"NYC", "US", "New York"},
	"nyc":            {"NYC", "US", "New York"},
	"los angeles":    {"LAX", "US", "Los Angeles"},
	"san francisco":  {"SFO", "US", "San Francisco"},
	"chicago":        {"CHI", "US", "Chicago"},
	"miami":          {"MIA", "US", "Miami"},
	"toronto":        {"YTO", "CA", "Toronto"},
	"montreal":       {"YMQ", "CA", "Montreal"},
	"mexico city":    {"MEX", "MX", "Mexico City"},
	"buenos aires":   {"BUE", "AR", "Buenos Aires"},
	"rio de janeiro": {"RIO", "BR", "Rio de Janeiro"},
	"sao paulo":      {"SAO", "BR", "Sao Paulo"},
	"tokyo":          {"TYO", "JP", "Tokyo"},
	"kyoto":          {"OSA", "JP", "Kyoto (Osaka airports)"},
	"osaka":          {"OSA", "JP", "Osaka"},
	"seoul":          {"SEL", "KR", "Seoul"},
	"beijing":        {"BJS", "CN", "Beijing"},
	"shanghai":       {"SHA", "CN", "Shanghai"},
	"hong kong":      {"HKG", "HK", "Hong Kong"},
	"singapore":      {"SIN", "SG", "Singapore"},
	"bangkok":        {"BKK", "TH", "Bangkok"},
	"bali":           {"DPS", "ID", "Bali (Denpasar)"},
	"denpasar":       {"DPS", "ID", "Bali (Denpasar)"},
	"dubai":          {"DXB", "AE", "Dubai"},
	"tel aviv":       {"TLV", "IL", "Tel Aviv"},
	"cairo":          {"CAI", "EG", "Cairo"},
	"marrakech":      {"RAK", "MA", "Marrakech"},
	"marrakesh":      {"RAK", "MA", "Marrakech"},
	"cape town":      {"CPT", "ZA", "Cape Town"},
	"sydney":         {"SYD", "AU", "Sydney"},
	"melbourne":      {"MEL", "AU", "Melbourne"},
	"auckland":       {"AKL", "NZ", "Auckland"},
	"delhi":          {"DEL", "IN", "Delhi"},
	"new delhi":      {"DEL", "IN", "Delhi"},
	"mumbai":         {"BOM", "IN", "Mumbai"},
	"bombay":         {"BOM", "IN", "Mumbai"},
}

// ResolveCityCode looks a city up case- and diacritic-insensitively.
func ResolveCityCode(city string) (CityCode, bool) {
	code, ok := cityCodes[NormalizeCityKey(city)]
	return code, ok
}

// SynthesizeCityCode builds a best-effort three-letter code for cities the
// table does not know. Search sites tolerate unknown codes better than a
// missing parameter.
func SynthesizeCityCode(city string) string {
	letters := make([]rune, 0, 3)
	for _, r := range NormalizeCityKey(city) {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'x')
	}
	return strings.ToUpper(string(letters))
}
