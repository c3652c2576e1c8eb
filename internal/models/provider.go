package models

// Gender values recognized by the directory. Anything else on a provider
// record is passed through untouched but never matched by the gender filter.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Provider is one clinician record as served by the directory. Records are
// immutable once loaded; all mutation happens at ingest (cmd/seed) or outside
// this system.
type Provider struct {
	ID                   string   `bson:"_id" json:"id"`
	ProfileImage         string   `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	FirstName            string   `bson:"firstName" json:"firstName"`
	MiddleInitial        string   `bson:"middleInitial,omitempty" json:"middleInitial,omitempty"`
	LastName             string   `bson:"lastName" json:"lastName"`
	Degree               string   `bson:"degree" json:"degree"`
	Type                 string   `bson:"type" json:"type"`
	SpecialtyName        string   `bson:"specialtyName" json:"specialtyName"`
	AddressLine1         string   `bson:"addressLine1" json:"addressLine1"`
	AddressLine2         string   `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	City                 string   `bson:"city" json:"city"`
	State                string   `bson:"state" json:"state"`
	County               string   `bson:"county,omitempty" json:"county,omitempty"`
	Country              string   `bson:"country,omitempty" json:"country,omitempty"`
	ZipCode              string   `bson:"zipCode" json:"zipCode"`
	Latitude             float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude            float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	PhoneNumber          string   `bson:"phoneNumber" json:"phoneNumber"`
	EmailID              string   `bson:"emailId,omitempty" json:"emailId,omitempty"`
	YearsOfExperience    int      `bson:"yearsOfExperience" json:"yearsOfExperience"`
	Rating               float64  `bson:"rating" json:"rating"`
	AcceptingNewPatients bool     `bson:"acceptingNewPatients" json:"acceptingNewPatients"`
	VirtualCareAvailable bool     `bson:"virtualCareAvailable" json:"virtualCareAvailable"`
	HospitalAffiliations bool     `bson:"hospitalAffiliations" json:"hospitalAffiliations"`
	BoardCertified       bool     `bson:"boardCertified" json:"boardCertified"`
	BoardName            string   `bson:"boardName,omitempty" json:"boardName,omitempty"`
	AffiliationName      string   `bson:"affiliationName,omitempty" json:"affiliationName,omitempty"`
	WorkingHours         string   `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	NpiID                string   `bson:"npiId" json:"npiId"`
	PlanName             string   `bson:"planName,omitempty" json:"planName,omitempty"`
	AcceptedAllPlans     []string `bson:"acceptedAllPlans,omitempty" json:"acceptedAllPlans,omitempty"`
	LanguagesSpoken      []string `bson:"languagesSpoken" json:"languagesSpoken"`
	Gender               string   `bson:"gender" json:"gender"`
	RaceEthnicity        string   `bson:"raceEthnicity,omitempty" json:"raceEthnicity,omitempty"`
}

// FullName is the display name used for name search and name sorting.
func (p *Provider) FullName() string {
	return p.FirstName + " " + p.LastName
}
