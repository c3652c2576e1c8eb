package main

import "github.com/krvjanand/physician-directory/internal/models"

// sampleProviders is a small cross-section of specialties, languages, and
// visit modes so every filter has something to match. IDs are assigned at
// insert time.
var sampleProviders = []models.Provider{
	{
		FirstName: "Alice", LastName: "Smith", Degree: "MD",
		Type: "Physician", SpecialtyName: "Cardiology",
		AddressLine1: "120 Main St", City: "Columbus", State: "OH", ZipCode: "43004",
		Latitude: 39.96, Longitude: -82.99,
		PhoneNumber: "614-555-0134", EmailID: "alice.smith@example.com",
		YearsOfExperience: 5, Rating: 4.2,
		AcceptingNewPatients: true, VirtualCareAvailable: true,
		HospitalAffiliations: true, BoardCertified: true,
		BoardName: "American Board of Internal Medicine", AffiliationName: "Riverside Methodist",
		WorkingHours: "Mon-Fri: 8:00 AM - 5:00 PM", NpiID: "1043302837",
		PlanName: "Aetna PPO", AcceptedAllPlans: []string{"Aetna PPO", "Cigna HMO"},
		LanguagesSpoken: []string{"English", "Spanish"}, Gender: models.GenderFemale,
	},
	{
		FirstName: "Bob", LastName: "Jones", Degree: "MD",
		Type: "Physician", SpecialtyName: "Cardiology",
		AddressLine1: "88 Oak Ave", City: "Cleveland", State: "OH", ZipCode: "44101",
		Latitude: 41.49, Longitude: -81.69,
		PhoneNumber: "216-555-0175", EmailID: "bob.jones@example.com",
		YearsOfExperience: 12, Rating: 4.8,
		AcceptingNewPatients: true, VirtualCareAvailable: false,
		HospitalAffiliations: true, BoardCertified: true,
		BoardName: "American Board of Internal Medicine", AffiliationName: "Cleveland Clinic",
		WorkingHours: "Mon-Fri: 8:00 AM - 5:00 PM", NpiID: "1629071809",
		PlanName: "UnitedHealthcare", AcceptedAllPlans: []string{"UnitedHealthcare"},
		LanguagesSpoken: []string{"English", "Hindi"}, Gender: models.GenderMale,
	},
	{
		FirstName: "Carmen", LastName: "Diaz", Degree: "DO",
		Type: "Physician", SpecialtyName: "Family Medicine",
		AddressLine1: "45 Elm St", City: "Cincinnati", State: "OH", ZipCode: "45202",
		Latitude: 39.10, Longitude: -84.51,
		PhoneNumber: "513-555-0108", EmailID: "carmen.diaz@example.com",
		YearsOfExperience: 8, Rating: 4.6,
		AcceptingNewPatients: true, VirtualCareAvailable: true,
		HospitalAffiliations: false, BoardCertified: true,
		BoardName: "American Board of Family Medicine",
		WorkingHours: "Mon-Sat: 9:00 AM - 6:00 PM", NpiID: "1184629412",
		PlanName: "Cigna HMO", AcceptedAllPlans: []string{"Cigna HMO", "Humana"},
		LanguagesSpoken: []string{"English", "Spanish"}, Gender: models.GenderFemale,
	},
	{
		FirstName: "David", LastName: "Kim", Degree: "MD",
		Type: "Physician", SpecialtyName: "Dermatology",
		AddressLine1: "200 Market St", City: "Columbus", State: "OH", ZipCode: "43215",
		Latitude: 39.95, Longitude: -83.00,
		PhoneNumber: "614-555-0192", EmailID: "david.kim@example.com",
		YearsOfExperience: 15, Rating: 4.9,
		AcceptingNewPatients: false, VirtualCareAvailable: true,
		HospitalAffiliations: true, BoardCertified: true,
		BoardName: "American Board of Dermatology", AffiliationName: "OSU Wexner",
		WorkingHours: "Mon-Thu: 8:00 AM - 4:00 PM", NpiID: "1710948276",
		PlanName: "Aetna PPO", AcceptedAllPlans: []string{"Aetna PPO"},
		LanguagesSpoken: []string{"English", "Korean"}, Gender: models.GenderMale,
	},
	{
		FirstName: "Emily", LastName: "Nguyen", Degree: "NP",
		Type: "Nurse Practitioner", SpecialtyName: "Pediatrics",
		AddressLine1: "310 Cherry Ln", City: "Dayton", State: "OH", ZipCode: "45402",
		Latitude: 39.76, Longitude: -84.19,
		PhoneNumber: "937-555-0147",
		YearsOfExperience: 3, Rating: 4.4,
		AcceptingNewPatients: true, VirtualCareAvailable: false,
		HospitalAffiliations: false, BoardCertified: false,
		WorkingHours: "Mon-Fri: 8:30 AM - 5:30 PM", NpiID: "1396024853",
		PlanName: "Medicaid", AcceptedAllPlans: []string{"Medicaid", "Humana"},
		LanguagesSpoken: []string{"English", "Vietnamese"}, Gender: models.GenderFemale,
	},
	{
		FirstName: "Frank", LastName: "Olawale", Degree: "MD",
		Type: "Physician", SpecialtyName: "Orthopedics",
		AddressLine1: "77 Summit Rd", City: "Toledo", State: "OH", ZipCode: "43604",
		Latitude: 41.65, Longitude: -83.54,
		PhoneNumber: "419-555-0121", EmailID: "frank.olawale@example.com",
		YearsOfExperience: 20, Rating: 4.7,
		AcceptingNewPatients: true, VirtualCareAvailable: false,
		HospitalAffiliations: true, BoardCertified: true,
		BoardName: "American Board of Orthopaedic Surgery", AffiliationName: "ProMedica Toledo",
		WorkingHours: "Mon-Fri: 7:00 AM - 3:00 PM", NpiID: "1558317692",
		PlanName: "UnitedHealthcare", AcceptedAllPlans: []string{"UnitedHealthcare", "Aetna PPO"},
		LanguagesSpoken: []string{"English", "Yoruba"}, Gender: models.GenderMale,
	},
	{
		FirstName: "Grace", LastName: "Lee", Degree: "MD",
		Type: "Physician", SpecialtyName: "Neurology",
		AddressLine1: "14 Birch Blvd", City: "Akron", State: "OH", ZipCode: "44308",
		Latitude: 41.08, Longitude: -81.52,
		PhoneNumber: "330-555-0113", EmailID: "grace.lee@example.com",
		YearsOfExperience: 11, Rating: 4.5,
		AcceptingNewPatients: false, VirtualCareAvailable: true,
		HospitalAffiliations: true, BoardCertified: true,
		BoardName: "American Board of Psychiatry and Neurology", AffiliationName: "Summa Health",
		WorkingHours: "Tue-Sat: 9:00 AM - 5:00 PM", NpiID: "1487203915",
		PlanName: "Humana", AcceptedAllPlans: []string{"Humana"},
		LanguagesSpoken: []string{"English", "Mandarin"}, Gender: models.GenderFemale,
	},
	{
		FirstName: "Hassan", LastName: "Rahimi", Degree: "MD",
		Type: "Physician", SpecialtyName: "Internal Medicine",
		AddressLine1: "52 Lakeview Dr", City: "Cleveland", State: "OH", ZipCode: "44114",
		Latitude: 41.50, Longitude: -81.68,
		PhoneNumber: "216-555-0188",
		YearsOfExperience: 7, Rating: 4.1,
		AcceptingNewPatients: true, VirtualCareAvailable: true,
		HospitalAffiliations: false, BoardCertified: true,
		BoardName: "American Board of Internal Medicine",
		WorkingHours: "Mon-Fri: 8:00 AM - 5:00 PM", NpiID: "1265439078",
		PlanName: "Cigna HMO", AcceptedAllPlans: []string{"Cigna HMO"},
		LanguagesSpoken: []string{"English", "Farsi"}, Gender: models.GenderMale,
	},
}
