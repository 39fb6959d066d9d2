package model

import (
	"strconv"
	"strings"
)

// Search filters drivers by a case-insensitive substring match against name,
// van, make, model, and year. A blank query returns the input unchanged.
func Search(drivers []Driver, query string) []Driver {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return drivers
	}

	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}

	var out []Driver
	for _, d := range drivers {
		switch {
		case contains(d.Name), contains(d.Van), contains(d.VanMake), contains(d.VanModel):
			out = append(out, d)
		case d.VanYear != nil && strings.Contains(strconv.Itoa(*d.VanYear), q):
			out = append(out, d)
		}
	}
	return out
}
