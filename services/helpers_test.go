package services

import (
	"time"

	"bikeshare/models"
	"bikeshare/utils"
)

func newTestLogger() *utils.Logger { return utils.NewDiscardLogger() }

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// sampleDataset: 2017-01-02 is a Monday.
func sampleDataset() *models.Dataset {
	return &models.Dataset{
		City:            "chicago",
		HasDemographics: true,
		Trips: []models.Trip{
			{StartTime: at("2017-01-02 08:00:00"), StartStation: "A", EndStation: "B", Duration: 10, UserType: "Subscriber", Gender: strPtr("Male"), BirthYear: intPtr(1990)},
			{StartTime: at("2017-01-03 08:30:00"), StartStation: "A", EndStation: "B", Duration: 20, UserType: "Customer", Gender: strPtr("Female"), BirthYear: intPtr(1985)},
			{StartTime: at("2017-02-06 17:00:00"), StartStation: "C", EndStation: "A", Duration: 30, UserType: "Subscriber", BirthYear: intPtr(1990)},
			{StartTime: at("2017-02-07 17:15:00"), StartStation: "C", EndStation: "", Duration: 40, UserType: "Subscriber", Gender: strPtr("Male")},
			{StartTime: at("2017-03-06 09:00:00"), StartStation: "", EndStation: "B", Duration: 50, UserType: "Subscriber", Gender: strPtr("Female"), BirthYear: intPtr(2001)},
		},
	}
}
