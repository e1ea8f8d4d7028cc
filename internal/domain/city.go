package domain

import "strings"

// cityCodes maps accepted city spellings to their airport code.
var cityCodes = map[string]string{
	"BOG": "BOG", "BOGOTA": "BOG", "BOGOTÁ": "BOG",
	"MDE": "MDE", "MED": "MDE", "MEDELLIN": "MDE", "MEDELLÍN": "MDE",
	"CTG": "CTG", "CARTAGENA": "CTG",
	"CLO": "CLO", "CALI": "CLO",
	"BAQ": "BAQ", "BARRANQUILLA": "BAQ",
	"SMR": "SMR", "SANTA MARTA": "SMR", "SANTAMARTA": "SMR",
	"PEI": "PEI", "PEREIRA": "PEI",
	"BGA": "BGA", "BUCARAMANGA": "BGA",
	"ADZ": "ADZ", "SAN ANDRES": "ADZ", "SAN ANDRÉS": "ADZ", "SANANDRES": "ADZ",
}

// NormalizeCityCode turns a city name or airport code into the airport code.
// Unknown values come back trimmed and upper-cased.
func NormalizeCityCode(city string) string {
	key := strings.ToUpper(strings.TrimSpace(city))
	if code, ok := cityCodes[key]; ok {
		return code
	}
	return key
}
