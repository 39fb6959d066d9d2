// Package model defines the driver roster entity and its identity rules.
package model

import (
	"encoding/json"
	"hash/fnv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Driver represents a single driver and their assigned van.
type Driver struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Van      string `json:"van"`
	Phone    string `json:"phone"`
	VanYear  *int   `json:"vanYear,omitempty"`
	VanMake  string `json:"vanMake"`
	VanModel string `json:"vanModel"`
	Active   bool   `json:"active"`
}

// UnmarshalJSON applies declared defaults for fields absent from older
// persisted files. Records written before the active flag existed load as
// active.
func (d *Driver) UnmarshalJSON(data []byte) error {
	type alias Driver
	aux := struct {
		*alias
		Active *bool `json:"active"`
	}{alias: (*alias)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Active = aux.Active == nil || *aux.Active
	return nil
}

// VanLabel returns a human-readable label combining year, make, model, and
// van number, e.g. "2020 Ford Transit 150 • Van #12".
func (d Driver) VanLabel() string {
	var b strings.Builder
	if d.VanYear != nil {
		b.WriteString(strconv.Itoa(*d.VanYear))
		b.WriteByte(' ')
	}
	if strings.TrimSpace(d.VanMake) != "" {
		b.WriteString(d.VanMake)
		b.WriteByte(' ')
	}
	if strings.TrimSpace(d.VanModel) != "" {
		b.WriteString(d.VanModel)
		b.WriteByte(' ')
	}
	if strings.TrimSpace(d.Van) != "" {
		b.WriteString("• ")
		b.WriteString(d.Van)
	}
	return strings.TrimSpace(b.String())
}

// PhoneDigits strips everything but decimal digits from a phone number.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NaturalKey identifies "the same real-world driver" across import batches:
// name plus phone digits when a phone is present, name plus van tag
// otherwise. Lowercased and trimmed on both sides.
func NaturalKey(d Driver) string {
	name := strings.ToLower(strings.TrimSpace(d.Name))
	if digits := PhoneDigits(d.Phone); digits != "" {
		return name + "|" + digits
	}
	return name + "|van:" + strings.ToLower(strings.TrimSpace(d.Van))
}

// DeriveID computes the surrogate id from the canonical natural key,
// FNV-32a over lower(trim(name)) + "|" + phoneDigits(phone), masked
// non-negative. Not collision-proof; uniqueness is enforced by the natural
// key during merge, not by the id.
func DeriveID(name, phone string) int {
	h := fnv.New32a()
	_, _ = io.WriteString(h, strings.ToLower(strings.TrimSpace(name)))
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, PhoneDigits(phone))
	return int(h.Sum32() & math.MaxInt32)
}

// vanOrder parses the van tag as an integer for sorting; non-numeric tags
// sort last.
func vanOrder(van string) int {
	n, err := strconv.Atoi(strings.TrimSpace(van))
	if err != nil {
		return math.MaxInt
	}
	return n
}

// Sort orders drivers canonically: van parsed as integer ascending with
// non-numeric vans last, then lowercase name ascending. Applied whenever the
// full collection is rewritten.
func Sort(drivers []Driver) {
	sort.SliceStable(drivers, func(i, j int) bool {
		vi, vj := vanOrder(drivers[i].Van), vanOrder(drivers[j].Van)
		if vi != vj {
			return vi < vj
		}
		return strings.ToLower(drivers[i].Name) < strings.ToLower(drivers[j].Name)
	})
}

// SortByVan orders drivers by van parsed as integer ascending, non-numeric
// vans last, stable on ties. Used for freshly mapped import batches.
func SortByVan(drivers []Driver) {
	sort.SliceStable(drivers, func(i, j int) bool {
		return vanOrder(drivers[i].Van) < vanOrder(drivers[j].Van)
	})
}
