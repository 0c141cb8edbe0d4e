package models

import "fmt"

type Category string

const (
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategorySeminar    Category = "seminar"
	CategoryNetworking Category = "networking"
	CategorySocial     Category = "social"
	CategoryOther      Category = "other"
)

// Categories lists every category in the order the create form offers them.
var Categories = []Category{
	CategoryConference,
	CategoryWorkshop,
	CategorySeminar,
	CategoryNetworking,
	CategorySocial,
	CategoryOther,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown category %q", s)
}

// Label is the human readable name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryConference:
		return "Conference"
	case CategoryWorkshop:
		return "Workshop"
	case CategorySeminar:
		return "Seminar"
	case CategoryNetworking:
		return "Networking"
	case CategorySocial:
		return "Social"
	case CategoryOther:
		return "Other"
	}

	return string(c)
}
