package citybus

import (
	"math"
)

// Passenger fare categories.
const (
	CategoryGeneral = "General"
	CategoryStudent = "Student"
	CategorySenior  = "Senior Citizen"
)

// FareCategory describes one passenger category's tariff.
type FareCategory struct {
	Category    string
	CategoryGu  string
	Description string
	BaseFare    float64 // rupees
	PerKm       float64 // rupees per kilometer
	MonthlyPass float64 // rupees, 0 when no pass is offered
	Documents   []string
}

// FareCategories lists the published tariffs: full fare for general
// passengers, 50% off for students, 40% off for senior citizens.
var FareCategories = []FareCategory{
	{
		Category:    CategoryGeneral,
		CategoryGu:  "સામાન્ય",
		Description: "Standard fare for all passengers",
		BaseFare:    5,
		PerKm:       1.5,
	},
	{
		Category:    CategoryStudent,
		CategoryGu:  "વિદ્યાર્થી",
		Description: "50% discount for students with valid ID",
		BaseFare:    2.5,
		PerKm:       0.75,
		MonthlyPass: 300,
		Documents: []string{
			"Valid Student ID",
			"School/College Bonafide Certificate",
			"Passport Photo",
		},
	},
	{
		Category:    CategorySenior,
		CategoryGu:  "વરિષ્ઠ નાગરિક",
		Description: "40% discount for citizens above 60 years",
		BaseFare:    3,
		PerKm:       0.9,
		MonthlyPass: 400,
		Documents: []string{
			"Age Proof (Aadhar/Pan)",
			"Passport Photo",
			"Address Proof",
		},
	},
}

// FareCategoryByName returns the tariff for a category, or nil when the
// category is unknown.
func FareCategoryByName(name string) *FareCategory {
	for i := range FareCategories {
		if FareCategories[i].Category == name {
			return &FareCategories[i]
		}
	}
	return nil
}

// CalculateFare computes the fare in whole rupees for a journey of the
// given distance. Unknown categories yield 0.
func CalculateFare(distanceKm float64, category string) float64 {
	fc := FareCategoryByName(category)
	if fc == nil {
		return 0
	}
	return math.Round(fc.BaseFare + distanceKm*fc.PerKm)
}
