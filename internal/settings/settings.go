// Package settings holds the admin-controlled visibility toggles: one boolean
// per displayable field, filter control, or sort option. The search UI reads
// them to decide what to render and which filters may participate in a query;
// the admin screen overwrites them wholesale on save.
package settings

// Toggle keys. Field keys gate what appears on a provider card/detail view,
// filter keys gate the filter controls, sort keys gate the sort menu entries.
const (
	KeyNameInput     = "nameInput"
	KeyLocationInput = "locationInput"
	KeyPlansFacility = "plansFacility"

	KeyFullName         = "fullName"
	KeyFullAddress      = "fullAddress"
	KeySpecialtyName    = "specialtyName"
	KeyRating           = "rating"
	KeyYearsExperience  = "yearsOfExperience"
	KeyPhoneNumber      = "phoneNumber"
	KeyPlanName         = "planName"
	KeyAcceptingStatus  = "acceptingStatus"
	KeyVirtualCare      = "virtualCareStatus"
	KeyTypeOfProvider   = "typeOfProvider"
	KeyBoardCertified   = "boardCertified"
	KeyGender           = "gender"
	KeyEmail            = "email"
	KeyNPI              = "npi"
	KeyLanguages        = "languages"
	KeyBoardName        = "boardName"
	KeyHospitalAffil    = "hospitalAffiliation"
	KeyAffiliationName  = "affiliationName"
	KeyAffiliatedStatus = "affiliatedStatus"

	KeySortAtoZ       = "sortAtoZ"
	KeySortZtoA       = "sortZtoA"
	KeySortHighRated  = "sortHighRated"
	KeySortExperience = "sortExperience"

	KeyFilterDistance        = "filterDistance"
	KeyFilterAcceptingStatus = "filterAcceptingStatus"
	KeyFilterSpecialty       = "filterSpecialty"
	KeyFilterVirtualCare     = "filterVirtualCare"
	KeyFilterHospitalAffil   = "filterHospitalAffiliation"
	KeyFilterGender          = "filterGender"
	KeyFilterLanguages       = "filterLanguages"
	KeyFilterBoardCertified  = "filterBoardCertified"
	KeyFilterExperience      = "filterExperience"
	KeyFilterRating          = "filterRating"
)

// KnownKeys lists every toggle the admin screen can set.
var KnownKeys = []string{
	KeyNameInput, KeyLocationInput, KeyPlansFacility,
	KeyFullName, KeyFullAddress, KeySpecialtyName, KeyRating,
	KeyYearsExperience, KeyPhoneNumber, KeyPlanName, KeyAcceptingStatus,
	KeyVirtualCare, KeyTypeOfProvider, KeyBoardCertified, KeyGender,
	KeyEmail, KeyNPI, KeyLanguages, KeyBoardName, KeyHospitalAffil,
	KeyAffiliationName, KeyAffiliatedStatus,
	KeySortAtoZ, KeySortZtoA, KeySortHighRated, KeySortExperience,
	KeyFilterDistance, KeyFilterAcceptingStatus, KeyFilterSpecialty,
	KeyFilterVirtualCare, KeyFilterHospitalAffil, KeyFilterGender,
	KeyFilterLanguages, KeyFilterBoardCertified, KeyFilterExperience,
	KeyFilterRating,
}

// Settings maps toggle keys to their visibility. A missing key counts as
// visible so that new toggles never hide anything retroactively.
type Settings map[string]bool

// Defaults returns a Settings with every known key visible.
func Defaults() Settings {
	s := make(Settings, len(KnownKeys))
	for _, k := range KnownKeys {
		s[k] = true
	}
	return s
}

// Enabled reports whether the toggle for key is on. Unknown and missing keys
// are treated as on.
func (s Settings) Enabled(key string) bool {
	if s == nil {
		return true
	}
	v, ok := s[key]
	if !ok {
		return true
	}
	return v
}

// Normalize drops unknown keys and fills missing ones from the defaults, so
// that a save always persists the complete mapping.
func Normalize(in Settings) Settings {
	out := Defaults()
	for _, k := range KnownKeys {
		if v, ok := in[k]; ok {
			out[k] = v
		}
	}
	return out
}
