package query

import (
	"sort"
	"strings"

	"github.com/krvjanand/physician-directory/internal/models"
)

// Result is one page of matching providers plus the total match count before
// pagination. The JSON shape matches the /api/providers response.
type Result struct {
	Providers []models.Provider `json:"providers"`
	Total     int               `json:"total"`
}

// Evaluate is the client-side strategy: it filters, sorts, and paginates a
// fully materialized provider list. The input slice is never mutated, the
// sort is stable, and the requested page is clamped into the valid range.
func Evaluate(providers []models.Provider, spec FilterSpec, page, perPage int) Result {
	filtered := make([]models.Provider, 0, len(providers))
	for _, p := range providers {
		if Matches(&p, spec) {
			filtered = append(filtered, p)
		}
	}
	sortProviders(filtered, spec.SortBy)

	pg := Pagination{PerPage: perPage, Total: len(filtered)}
	pg.GoTo(page)
	start, end := pg.Window()

	return Result{Providers: filtered[start:end], Total: len(filtered)}
}

// Matches reports whether the provider satisfies every set field of the spec:
// AND across fields, OR within the requested languages.
func Matches(p *models.Provider, spec FilterSpec) bool {
	if spec.Name != "" &&
		!strings.Contains(strings.ToLower(p.FullName()), strings.ToLower(spec.Name)) {
		return false
	}
	if spec.Location != "" && !matchesLocation(p, spec.Location) {
		return false
	}
	if spec.Specialty != "" &&
		!strings.Contains(strings.ToLower(p.SpecialtyName), strings.ToLower(spec.Specialty)) {
		return false
	}
	if spec.AcceptingNewPatients != nil && p.AcceptingNewPatients != *spec.AcceptingNewPatients {
		return false
	}
	if spec.VirtualCare != nil && p.VirtualCareAvailable != *spec.VirtualCare {
		return false
	}
	if spec.HospitalAffiliations != nil && p.HospitalAffiliations != *spec.HospitalAffiliations {
		return false
	}
	if spec.BoardCertified != nil && p.BoardCertified != *spec.BoardCertified {
		return false
	}
	if spec.Gender != "" && p.Gender != spec.Gender {
		return false
	}
	if len(spec.Languages) > 0 && !speaksAny(p.LanguagesSpoken, spec.Languages) {
		return false
	}
	if spec.MinExperience > 0 && p.YearsOfExperience < spec.MinExperience {
		return false
	}
	return true
}

func matchesLocation(p *models.Provider, location string) bool {
	lower := strings.ToLower(location)
	return strings.Contains(strings.ToLower(p.City), lower) ||
		strings.Contains(strings.ToLower(p.State), lower) ||
		strings.Contains(p.ZipCode, location)
}

func speaksAny(spoken, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range spoken {
			if s == w {
				return true
			}
		}
	}
	return false
}

// sortProviders orders in place. The sort is stable so equal keys keep their
// source-collection order. An empty or unknown key leaves the order as is.
func sortProviders(providers []models.Provider, sortBy string) {
	switch sortBy {
	case SortRating:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].Rating > providers[j].Rating
		})
	case SortNameAsc:
		sort.SliceStable(providers, func(i, j int) bool {
			return strings.ToLower(providers[i].FullName()) < strings.ToLower(providers[j].FullName())
		})
	case SortNameDesc:
		sort.SliceStable(providers, func(i, j int) bool {
			return strings.ToLower(providers[i].FullName()) > strings.ToLower(providers[j].FullName())
		})
	case SortExperience:
		sort.SliceStable(providers, func(i, j int) bool {
			return providers[i].YearsOfExperience > providers[j].YearsOfExperience
		})
	}
}
