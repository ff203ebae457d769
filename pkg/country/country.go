// Package country provides ISO 3166-1 country metadata used to check that an
// identifier's country segment names a real country.
package country

// Code is an ISO 3166-1 alpha-2 country code (e.g. "DE").
type Code string

// String returns the alpha-2 code.
func (c Code) String() string { return string(c) }

// Country is the canonical identity of one country.
type Country struct {
	Alpha2 string
	Alpha3 string
	Name   string
}

// Code returns the alpha-2 code as a typed Code.
func (c Country) Code() Code { return Code(c.Alpha2) }

var (
	byAlpha2 = make(map[string]Country, len(countries))
	byAlpha3 = make(map[string]Country, len(countries))
)

func init() {
	for _, c := range countries {
		byAlpha2[c.Alpha2] = c
		byAlpha3[c.Alpha3] = c
	}
}

// ByCode looks a country up by its alpha-2 or alpha-3 code.
// Lookup is case-sensitive: codes are upper case.
func ByCode(code string) (Country, bool) {
	switch len(code) {
	case 2:
		c, ok := byAlpha2[code]
		return c, ok
	case 3:
		c, ok := byAlpha3[code]
		return c, ok
	default:
		return Country{}, false
	}
}

// Exists reports whether code is a known alpha-2 code.
func Exists(code string) bool {
	_, ok := byAlpha2[code]
	return ok
}

// All returns every known country ordered by alpha-2 code.
func All() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}
