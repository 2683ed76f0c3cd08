package utils

import (
	"testing"

	"github.com/profinder-dev/profinder/models"
	"github.com/stretchr/testify/assert"
)

func sampleProfessionals() []models.Professional {
	return []models.Professional{
		{Name: "Ravi Kumar", Profession: "Electrician", City: "Pune"},
		{Name: "Anita Desai", Profession: "Plumber", City: "Mumbai"},
		{Name: "Suresh Patil", Profession: "Electrician", City: "Mumbai"},
		{Name: "Meena Joshi", Profession: "Carpenter", City: "Nashik"},
	}
}

func TestMatchesSearchTerm(t *testing.T) {
	p := models.Professional{Name: "Ravi Kumar", Profession: "Electrician", City: "Pune"}

	assert.True(t, MatchesSearchTerm(&p, ""))
	assert.True(t, MatchesSearchTerm(&p, "ravi"))
	assert.True(t, MatchesSearchTerm(&p, "RAVI"))
	assert.True(t, MatchesSearchTerm(&p, "electr"))
	assert.True(t, MatchesSearchTerm(&p, "pune"))
	assert.True(t, MatchesSearchTerm(&p, "umar"))
	assert.False(t, MatchesSearchTerm(&p, "plumber"))
	assert.False(t, MatchesSearchTerm(&p, "mumbai"))
}

func TestFilterProfessionalsSearchTerm(t *testing.T) {
	list := sampleProfessionals()

	got := FilterProfessionals(list, ProfessionalFilter{SearchTerm: "mumbai"})
	assert.Len(t, got, 2)

	got = FilterProfessionals(list, ProfessionalFilter{SearchTerm: "desai"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Anita Desai", got[0].Name)

	got = FilterProfessionals(list, ProfessionalFilter{SearchTerm: "nobody"})
	assert.Empty(t, got)
}

func TestFilterProfessionalsDropdowns(t *testing.T) {
	list := sampleProfessionals()

	got := FilterProfessionals(list, ProfessionalFilter{Profession: "Electrician"})
	assert.Len(t, got, 2)

	// Dropdown match is exact on the value, not a substring
	got = FilterProfessionals(list, ProfessionalFilter{Profession: "Electr"})
	assert.Empty(t, got)

	// But case-insensitive
	got = FilterProfessionals(list, ProfessionalFilter{Profession: "electrician", City: "mumbai"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Suresh Patil", got[0].Name)
}

func TestFilterProfessionalsCombined(t *testing.T) {
	list := sampleProfessionals()

	got := FilterProfessionals(list, ProfessionalFilter{SearchTerm: "patil", Profession: "Electrician", City: "Mumbai"})
	assert.Len(t, got, 1)

	// All filters must hold at once
	got = FilterProfessionals(list, ProfessionalFilter{SearchTerm: "patil", Profession: "Plumber"})
	assert.Empty(t, got)
}

func TestPaginateProfessionals(t *testing.T) {
	list := sampleProfessionals()

	p := &Pagination{Page: 1, Limit: 3, Offset: 0}
	page := PaginateProfessionals(list, p)
	assert.Len(t, page, 3)
	assert.Equal(t, int64(4), p.Total)
	assert.Equal(t, 2, p.LastPage)

	p = &Pagination{Page: 2, Limit: 3, Offset: 3}
	page = PaginateProfessionals(list, p)
	assert.Len(t, page, 1)
	assert.Equal(t, "Meena Joshi", page[0].Name)

	p = &Pagination{Page: 5, Limit: 3, Offset: 12}
	page = PaginateProfessionals(list, p)
	assert.Empty(t, page)
}
