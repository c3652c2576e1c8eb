// Package query is the filter/sort/pagination core of the directory. A
// FilterSpec captures the user's search intent; Evaluate applies it to an
// in-memory provider list, while FilterSpec.Values serializes it for the
// remote paginated endpoint. Both paths share the same semantics.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/krvjanand/physician-directory/internal/settings"
)

// Sort keys as they appear on the wire.
const (
	SortRating     = "rating"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortExperience = "experience"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 9
)

// FilterSpec is the full set of user-chosen search parameters at a point in
// time. Every optional field defaults to "no constraint": empty string, nil
// pointer, zero count. A false-like sentinel must never stand in for "unset",
// otherwise providers would be wrongly excluded.
type FilterSpec struct {
	Name      string
	Specialty string
	Location  string

	// Distance is advisory only; no geospatial matching happens anywhere.
	Distance int

	AcceptingNewPatients *bool
	VirtualCare          *bool
	HospitalAffiliations *bool
	BoardCertified       *bool

	Gender        string
	MinExperience int
	Languages     []string

	SortBy string
}

// ParseValues decodes a request query string into a FilterSpec plus page and
// per-page numbers. Missing and empty parameters both mean "no constraint".
func ParseValues(vals url.Values) (spec FilterSpec, page, perPage int) {
	page = parseInt(vals.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}
	perPage = parseInt(vals.Get("per_page"), DefaultPerPage)
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	spec = FilterSpec{
		Name:                 strings.TrimSpace(vals.Get("name")),
		Specialty:            strings.TrimSpace(vals.Get("specialty")),
		Location:             strings.TrimSpace(vals.Get("location")),
		Distance:             parseInt(vals.Get("distance"), 0),
		Gender:               vals.Get("gender"),
		MinExperience:        parseInt(vals.Get("minExperience"), 0),
		AcceptingNewPatients: parseBool(vals.Get("acceptingNewPatients")),
		VirtualCare:          parseBool(vals.Get("virtualCare")),
		HospitalAffiliations: parseBool(vals.Get("hospitalAffiliations")),
		BoardCertified:       parseBool(vals.Get("boardCertified")),
		SortBy:               vals.Get("sortBy"),
	}
	if spec.MinExperience < 0 {
		spec.MinExperience = 0
	}
	for _, lang := range vals["languagesSpoken"] {
		if lang = strings.TrimSpace(lang); lang != "" {
			spec.Languages = append(spec.Languages, lang)
		}
	}
	return spec, page, perPage
}

// Values serializes the spec for the remote /api/providers endpoint. Fields
// at their no-constraint default are omitted; the endpoint treats missing and
// empty identically.
func (s FilterSpec) Values(page, perPage int) url.Values {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(page))
	vals.Set("per_page", strconv.Itoa(perPage))

	setIfNotEmpty := func(key, v string) {
		if v != "" {
			vals.Set(key, v)
		}
	}
	setIfNotEmpty("name", s.Name)
	setIfNotEmpty("specialty", s.Specialty)
	setIfNotEmpty("location", s.Location)
	setIfNotEmpty("gender", s.Gender)
	setIfNotEmpty("sortBy", s.SortBy)
	if s.Distance > 0 {
		vals.Set("distance", strconv.Itoa(s.Distance))
	}
	if s.MinExperience > 0 {
		vals.Set("minExperience", strconv.Itoa(s.MinExperience))
	}
	setBool := func(key string, v *bool) {
		if v != nil {
			vals.Set(key, strconv.FormatBool(*v))
		}
	}
	setBool("acceptingNewPatients", s.AcceptingNewPatients)
	setBool("virtualCare", s.VirtualCare)
	setBool("hospitalAffiliations", s.HospitalAffiliations)
	setBool("boardCertified", s.BoardCertified)
	for _, lang := range s.Languages {
		vals.Add("languagesSpoken", lang)
	}
	return vals
}

// ApplyVisibility clears every filter and sort whose admin toggle is off,
// returning a copy. A stale value left in the spec after the admin disabled
// its control must never reach a predicate or a query string.
func (s FilterSpec) ApplyVisibility(vis settings.Settings) FilterSpec {
	if !vis.Enabled(settings.KeyNameInput) {
		s.Name = ""
	}
	if !vis.Enabled(settings.KeyLocationInput) {
		s.Location = ""
	}
	if !vis.Enabled(settings.KeyFilterSpecialty) {
		s.Specialty = ""
	}
	if !vis.Enabled(settings.KeyFilterDistance) {
		s.Distance = 0
	}
	if !vis.Enabled(settings.KeyFilterAcceptingStatus) {
		s.AcceptingNewPatients = nil
	}
	if !vis.Enabled(settings.KeyFilterVirtualCare) {
		s.VirtualCare = nil
	}
	if !vis.Enabled(settings.KeyFilterHospitalAffil) {
		s.HospitalAffiliations = nil
	}
	if !vis.Enabled(settings.KeyFilterBoardCertified) {
		s.BoardCertified = nil
	}
	if !vis.Enabled(settings.KeyFilterGender) {
		s.Gender = ""
	}
	if !vis.Enabled(settings.KeyFilterLanguages) {
		s.Languages = nil
	}
	if !vis.Enabled(settings.KeyFilterExperience) {
		s.MinExperience = 0
	}
	if key, ok := sortToggle(s.SortBy); ok && !vis.Enabled(key) {
		// Disabled sort falls back to source order rather than silently
		// substituting another key.
		s.SortBy = ""
	}
	return s
}

func sortToggle(sortBy string) (string, bool) {
	switch sortBy {
	case SortRating:
		return settings.KeySortHighRated, true
	case SortNameAsc:
		return settings.KeySortAtoZ, true
	case SortNameDesc:
		return settings.KeySortZtoA, true
	case SortExperience:
		return settings.KeySortExperience, true
	}
	return "", false
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// parseBool maps "true"/"false" to a constraint and anything else to nil.
func parseBool(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
