package model

import "time"

// Meal categories recorded in meal_attendance. The check-in flow only ever
// writes MealTypeGuest; the rest come from other intake processes sharing
// the same table.
const (
	MealTypeGuest        = "guest"
	MealTypeExtra        = "extra"
	MealTypeRV           = "rv"
	MealTypeShelter      = "shelter"
	MealTypeUnitedEffort = "united_effort"
	MealTypeDayWorker    = "day_worker"
	MealTypeLunchBag     = "lunch_bag"
)

// Guest is maintained by an external registration process; this service
// only ever reads it.
type Guest struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	ExternalID    string  `gorm:"uniqueIndex" json:"external_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	FullName      string  `gorm:"index" json:"full_name"`
	PreferredName *string `json:"preferred_name"`
	HousingStatus string  `json:"housing_status"`
	AgeGroup      string  `json:"age_group"`
	Gender        string  `json:"gender"`
}

type MealAttendance struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	GuestID    *string   `gorm:"type:uuid;index" json:"guest_id"`
	MealType   string    `json:"meal_type"`
	Quantity   *int      `json:"quantity"`
	ServedOn   string    `gorm:"type:date" json:"served_on"`
	RecordedAt time.Time `json:"recorded_at"`
	Notes      *string   `json:"notes"`
}

func (Guest) TableName() string          { return "guests" }
func (MealAttendance) TableName() string { return "meal_attendance" }

// DisplayName prefers the guest's preferred name when it differs from the
// registered full name.
func (g Guest) DisplayName() string {
	if g.PreferredName != nil && *g.PreferredName != "" && *g.PreferredName != g.FullName {
		return *g.PreferredName + " (" + g.FullName + ")"
	}
	return g.FullName
}
