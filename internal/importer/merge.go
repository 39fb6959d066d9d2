package importer

import (
	"strings"

	"github.com/sells-group/roster-cli/internal/model"
)

// Merge reconciles a freshly imported batch with the existing collection,
// keyed by natural key. New keys are inserted with a freshly derived id.
// Existing keys merge field-by-field: name and van are refreshed whenever
// the imported value is non-blank; vanYear fills only when the existing
// year is absent; make, model, and phone fill only when the existing value
// is blank. The result is the full collection in canonical order.
func Merge(existing, imported []model.Driver) []model.Driver {
	byKey := make(map[string]model.Driver, len(existing)+len(imported))
	order := make([]string, 0, len(existing)+len(imported))

	for _, d := range existing {
		k := model.NaturalKey(d)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = d
	}

	for _, imp := range imported {
		k := model.NaturalKey(imp)
		prev, seen := byKey[k]
		if !seen {
			imp.ID = model.DeriveID(imp.Name, imp.Phone)
			byKey[k] = imp
			order = append(order, k)
			continue
		}
		byKey[k] = mergeDriver(prev, imp)
	}

	out := make([]model.Driver, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	model.Sort(out)
	return out
}

func mergeDriver(prev, imp model.Driver) model.Driver {
	merged := prev
	if !blank(imp.Name) {
		merged.Name = imp.Name
	}
	if !blank(imp.Van) {
		merged.Van = imp.Van
	}
	if merged.VanYear == nil {
		merged.VanYear = imp.VanYear
	}
	if blank(merged.VanMake) {
		merged.VanMake = imp.VanMake
	}
	if blank(merged.VanModel) {
		merged.VanModel = imp.VanModel
	}
	if blank(merged.Phone) {
		merged.Phone = imp.Phone
	}
	return merged
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
