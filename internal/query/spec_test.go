package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/settings"
)

func TestParseValuesDefaults(t *testing.T) {
	spec, page, perPage := ParseValues(url.Values{})

	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPerPage, perPage)
	assert.Empty(t, spec.Name)
	assert.Empty(t, spec.Gender)
	assert.Nil(t, spec.AcceptingNewPatients)
	assert.Nil(t, spec.VirtualCare)
	assert.Nil(t, spec.BoardCertified)
	assert.Nil(t, spec.HospitalAffiliations)
	assert.Zero(t, spec.MinExperience)
	assert.Empty(t, spec.Languages)
}

func TestParseValuesFull(t *testing.T) {
	vals := url.Values{
		"page":                 {"3"},
		"per_page":             {"12"},
		"name":                 {" smith "},
		"specialty":            {"Cardiology"},
		"location":             {"Columbus"},
		"distance":             {"25"},
		"gender":               {"Female"},
		"minExperience":        {"10"},
		"acceptingNewPatients": {"true"},
		"virtualCare":          {"false"},
		"boardCertified":       {"notabool"},
		"sortBy":               {"rating"},
		"languagesSpoken":      {"Spanish", "Hindi", " "},
	}

	spec, page, perPage := ParseValues(vals)

	assert.Equal(t, 3, page)
	assert.Equal(t, 12, perPage)
	assert.Equal(t, "smith", spec.Name)
	assert.Equal(t, "Cardiology", spec.Specialty)
	assert.Equal(t, 25, spec.Distance)
	assert.Equal(t, "Female", spec.Gender)
	assert.Equal(t, 10, spec.MinExperience)
	require.NotNil(t, spec.AcceptingNewPatients)
	assert.True(t, *spec.AcceptingNewPatients)
	require.NotNil(t, spec.VirtualCare)
	assert.False(t, *spec.VirtualCare)
	assert.Nil(t, spec.BoardCertified, "garbage boolean params mean no constraint")
	assert.Equal(t, SortRating, spec.SortBy)
	assert.Equal(t, []string{"Spanish", "Hindi"}, spec.Languages)
}

func TestParseValuesRejectsNegativeNumbers(t *testing.T) {
	spec, page, perPage := ParseValues(url.Values{
		"page":          {"-2"},
		"per_page":      {"0"},
		"minExperience": {"-5"},
	})

	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPerPage, perPage)
	assert.Zero(t, spec.MinExperience)
}

func TestValuesOmitsNoConstraintFields(t *testing.T) {
	vals := FilterSpec{}.Values(1, 9)

	assert.Equal(t, "1", vals.Get("page"))
	assert.Equal(t, "9", vals.Get("per_page"))
	for _, key := range []string{
		"name", "specialty", "location", "distance", "gender",
		"minExperience", "acceptingNewPatients", "virtualCare",
		"hospitalAffiliations", "boardCertified", "sortBy",
	} {
		_, present := vals[key]
		assert.False(t, present, "no-constraint field %q must be omitted", key)
	}
	assert.Empty(t, vals["languagesSpoken"])
}

func TestValuesRoundTripsThroughParse(t *testing.T) {
	spec := FilterSpec{
		Name:                 "smith",
		Specialty:            "Cardiology",
		Location:             "Columbus",
		Distance:             25,
		Gender:               models.GenderFemale,
		MinExperience:        10,
		AcceptingNewPatients: boolPtr(true),
		BoardCertified:       boolPtr(false),
		Languages:            []string{"Spanish", "Hindi"},
		SortBy:               SortExperience,
	}

	parsed, page, perPage := ParseValues(spec.Values(2, 12))

	assert.Equal(t, 2, page)
	assert.Equal(t, 12, perPage)
	assert.Equal(t, spec, parsed)
}

func TestApplyVisibilityClearsDisabledFilters(t *testing.T) {
	spec := FilterSpec{
		Name:                 "smith",
		Location:             "Columbus",
		Specialty:            "Cardiology",
		Distance:             25,
		Gender:               models.GenderFemale,
		MinExperience:        10,
		Languages:            []string{"Spanish"},
		AcceptingNewPatients: boolPtr(true),
		VirtualCare:          boolPtr(true),
		HospitalAffiliations: boolPtr(false),
		BoardCertified:       boolPtr(true),
		SortBy:               SortRating,
	}

	vis := settings.Defaults()
	vis[settings.KeyFilterGender] = false
	vis[settings.KeyFilterLanguages] = false
	vis[settings.KeyFilterExperience] = false

	masked := spec.ApplyVisibility(vis)

	assert.Empty(t, masked.Gender, "a stale gender value must not survive a disabled toggle")
	assert.Nil(t, masked.Languages)
	assert.Zero(t, masked.MinExperience)

	// Everything with an enabled toggle is untouched.
	assert.Equal(t, spec.Name, masked.Name)
	assert.Equal(t, spec.Location, masked.Location)
	assert.Equal(t, spec.Specialty, masked.Specialty)
	assert.Equal(t, spec.AcceptingNewPatients, masked.AcceptingNewPatients)
	assert.Equal(t, spec.SortBy, masked.SortBy)
}

func TestApplyVisibilityDisabledSortFallsBackToSourceOrder(t *testing.T) {
	vis := settings.Defaults()
	vis[settings.KeySortHighRated] = false

	masked := FilterSpec{SortBy: SortRating}.ApplyVisibility(vis)
	assert.Empty(t, masked.SortBy)

	// Other sort keys are unaffected.
	masked = FilterSpec{SortBy: SortNameAsc}.ApplyVisibility(vis)
	assert.Equal(t, SortNameAsc, masked.SortBy)
}

func TestApplyVisibilityAllEnabledIsIdentity(t *testing.T) {
	spec := FilterSpec{
		Name:   "smith",
		Gender: models.GenderMale,
		SortBy: SortNameDesc,
	}
	assert.Equal(t, spec, spec.ApplyVisibility(settings.Defaults()))
}
