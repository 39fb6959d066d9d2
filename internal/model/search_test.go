package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func searchFixture() []Driver {
	return []Driver{
		{Name: "Jo Smith", Van: "12", VanMake: "Ford", VanModel: "Transit 150", VanYear: intPtr(2020)},
		{Name: "Amy Lee", Van: "5", VanMake: "Ram", VanModel: "ProMaster"},
		{Name: "Dan Ford", Van: "Spare"},
	}
}

func TestSearch_BlankQueryReturnsAll(t *testing.T) {
	drivers := searchFixture()
	assert.Equal(t, drivers, Search(drivers, "   "))
}

func TestSearch_CaseInsensitiveName(t *testing.T) {
	got := Search(searchFixture(), "jo smith")
	assert.Len(t, got, 1)
	assert.Equal(t, "Jo Smith", got[0].Name)
}

func TestSearch_MatchesMake(t *testing.T) {
	// "ford" hits both the Ford van and Dan Ford by name.
	got := Search(searchFixture(), "FORD")
	assert.Len(t, got, 2)
}

func TestSearch_MatchesYear(t *testing.T) {
	got := Search(searchFixture(), "2020")
	assert.Len(t, got, 1)
	assert.Equal(t, "Jo Smith", got[0].Name)
}

func TestSearch_NoMatch(t *testing.T) {
	assert.Empty(t, Search(searchFixture(), "zzz"))
}
