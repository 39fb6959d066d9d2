package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roster-cli/internal/model"
)

func TestMerge_FillIfBlank(t *testing.T) {
	// Both rows key on jo|555; the imported row fills the blank van.
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "", Phone: "555", Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "12", Phone: "555", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1)
	assert.Equal(t, "12", merged[0].Van, "imported fills the blank van")
	assert.Equal(t, "555", merged[0].Phone)
	assert.Equal(t, 1, merged[0].ID, "existing id preserved")
}

func TestMerge_ExistingFieldPreservedOverBlankImport(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "7", Phone: "555", VanMake: "Ford", Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "", Phone: "555", VanMake: "", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1)
	assert.Equal(t, "7", merged[0].Van)
	assert.Equal(t, "Ford", merged[0].VanMake)
}

func TestMerge_NameAndVanAlwaysRefreshed(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "jo smith", Van: "7", Phone: "555", Active: true}}
	imported := []model.Driver{{Name: "Jo Smith", Van: "12", Phone: "(555)", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1)
	assert.Equal(t, "Jo Smith", merged[0].Name, "non-blank imported name refreshes casing")
	assert.Equal(t, "12", merged[0].Van, "non-blank imported van overrides")
}

func TestMerge_OtherFieldsDoNotOverride(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "7", Phone: "555", VanMake: "Ford", VanModel: "Transit", Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "7", Phone: "555", VanMake: "Ram", VanModel: "ProMaster", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1)
	assert.Equal(t, "Ford", merged[0].VanMake, "non-blank existing make kept")
	assert.Equal(t, "Transit", merged[0].VanModel)
}

func TestMerge_VanYearFillsWhenAbsent(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "7", Phone: "555", Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "7", Phone: "555", VanYear: intp(2020), Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1)
	require.NotNil(t, merged[0].VanYear)
	assert.Equal(t, 2020, *merged[0].VanYear)
}

func TestMerge_VanYearNotOverridden(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "7", Phone: "555", VanYear: intp(2018), Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "7", Phone: "555", VanYear: intp(2022), Active: true}}

	merged := Merge(existing, imported)
	require.NotNil(t, merged[0].VanYear)
	assert.Equal(t, 2018, *merged[0].VanYear)
}

func TestMerge_NewKeyGetsDerivedID(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Amy", Van: "1", Phone: "111", Active: true}}
	imported := []model.Driver{{ID: 999, Name: "Jo", Van: "12", Phone: "555-0102", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 2)

	var jo model.Driver
	for _, d := range merged {
		if d.Name == "Jo" {
			jo = d
		}
	}
	assert.Equal(t, model.DeriveID("Jo", "555-0102"), jo.ID, "inserted row gets a freshly derived id")
}

func TestMerge_VanFallbackKeyWhenNoPhone(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "12", Phone: "", VanMake: "", Active: true}}
	imported := []model.Driver{{Name: "Jo", Van: "12", Phone: "", VanMake: "Ford", Active: true}}

	merged := Merge(existing, imported)
	require.Len(t, merged, 1, "name|van key matches when both phones are empty")
	assert.Equal(t, "Ford", merged[0].VanMake)
}

func TestMerge_ResultCanonicallyOrdered(t *testing.T) {
	existing := []model.Driver{
		{ID: 1, Name: "Dan", Van: "Spare", Phone: "1", Active: true},
		{ID: 2, Name: "Eve", Van: "5", Phone: "2", Active: true},
	}
	imported := []model.Driver{
		{Name: "Amy", Van: "1", Phone: "3", Active: true},
		{Name: "Bob", Van: "12", Phone: "4", Active: true},
	}

	merged := Merge(existing, imported)
	require.Len(t, merged, 4)

	vans := []string{merged[0].Van, merged[1].Van, merged[2].Van, merged[3].Van}
	assert.Equal(t, []string{"1", "5", "12", "Spare"}, vans)
}

func TestMerge_EmptyBatchKeepsExisting(t *testing.T) {
	existing := []model.Driver{{ID: 1, Name: "Jo", Van: "1", Phone: "555", Active: true}}

	merged := Merge(existing, nil)
	assert.Equal(t, existing, merged)
}
