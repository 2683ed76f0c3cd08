package utils

import (
	"strings"

	"github.com/profinder-dev/profinder/models"
)

// ProfessionalFilter holds the listing filter inputs: a free-text search
// term matched as a case-insensitive substring against name, profession,
// and city, plus exact dropdown matches on profession and city.
type ProfessionalFilter struct {
	SearchTerm string
	Profession string
	City       string
}

// MatchesSearchTerm reports whether the professional's name, profession,
// or city contains the term, case-insensitively. An empty term matches.
func MatchesSearchTerm(p *models.Professional, term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), t) ||
		strings.Contains(strings.ToLower(p.Profession), t) ||
		strings.Contains(strings.ToLower(p.City), t)
}

// Matches applies the full filter to a single professional
func (f ProfessionalFilter) Matches(p *models.Professional) bool {
	if !MatchesSearchTerm(p, f.SearchTerm) {
		return false
	}
	if f.Profession != "" && !strings.EqualFold(p.Profession, f.Profession) {
		return false
	}
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	return true
}

// FilterProfessionals returns exactly the subset of professionals matching the filter
func FilterProfessionals(list []models.Professional, f ProfessionalFilter) []models.Professional {
	out := make([]models.Professional, 0, len(list))
	for i := range list {
		if f.Matches(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

// PaginateProfessionals slices a filtered list for the requested page
func PaginateProfessionals(list []models.Professional, p *Pagination) []models.Professional {
	p.SetTotal(int64(len(list)))
	if p.Offset >= len(list) {
		return []models.Professional{}
	}
	end := p.Offset + p.Limit
	if end > len(list) {
		end = len(list)
	}
	return list[p.Offset:end]
}
