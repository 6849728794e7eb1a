package domain

import (
	"fmt"
	"regexp"
)

type idRule struct {
	pattern  *regexp.Regexp
	idType   IDType
	example  string
	personal string
	business string
}

var idRules = map[Country]idRule{
	CountryChile: {
		pattern:  regexp.MustCompile(`^\d{1,2}\.?\d{3}\.?\d{3}-[\dkK]$`),
		idType:   IDTypeRUT,
		example:  "12.345.678-9",
		personal: "RUT",
		business: "business RUT",
	},
	CountryPeru: {
		pattern:  regexp.MustCompile(`^\d{8,11}$`),
		idType:   IDTypeRUC,
		example:  "12345678901",
		personal: "RUC",
		business: "business RUC",
	},
	CountryColombia: {
		pattern:  regexp.MustCompile(`^\d{1,3}\.?\d{3}\.?\d{3}-?\d$`),
		idType:   IDTypeNIT,
		example:  "123.456.789-0",
		personal: "NIT",
		business: "business NIT",
	},
}

// Regions lists the Chilean regions accepted on the registration form.
var Regions = []string{
	"Arica y Parinacota",
	"Tarapacá",
	"Antofagasta",
	"Atacama",
	"Coquimbo",
	"Valparaíso",
	"Metropolitana de Santiago",
	"O'Higgins",
	"Maule",
	"Ñuble",
	"Biobío",
	"La Araucanía",
	"Los Ríos",
	"Los Lagos",
	"Aysén",
	"Magallanes",
}

func ValidRegion(r string) bool {
	for _, v := range Regions {
		if v == r {
			return true
		}
	}
	return false
}

func (c Country) Supported() bool {
	_, ok := idRules[c]
	return ok
}

// IDTypeFor returns the identification scheme used in country c.
func IDTypeFor(c Country) (IDType, error) {
	rule, ok := idRules[c]
	if !ok {
		return "", InvalidField("country", fmt.Sprintf("unsupported country: %s", c))
	}
	return rule.idType, nil
}

func ValidatePersonalID(id string, c Country) error {
	rule, ok := idRules[c]
	if !ok {
		return InvalidField("country", fmt.Sprintf("unsupported country: %s", c))
	}
	if !rule.pattern.MatchString(id) {
		return InvalidField("personalId", fmt.Sprintf("invalid %s format, e.g. %s", rule.personal, rule.example))
	}
	return nil
}

func ValidateBusinessID(id string, c Country) error {
	rule, ok := idRules[c]
	if !ok {
		return InvalidField("country", fmt.Sprintf("unsupported country: %s", c))
	}
	if !rule.pattern.MatchString(id) {
		return InvalidField("businessId", fmt.Sprintf("invalid %s format, e.g. %s", rule.business, rule.example))
	}
	return nil
}
