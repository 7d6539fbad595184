package domain

// PTType distinguishes how a trainer offers sessions.
type PTType string

const (
	PTTypeGym       PTType = "gym"
	PTTypeFreelance PTType = "freelance"
)

// Trainer is a personal trainer search result. A trainer with at least
// one enabled freelance package is classified as freelance even when
// they also carry a gym affiliation.
type Trainer struct {
	ID            string      `json:"id"`
	FullName      string      `json:"fullName"`
	Email         string      `json:"email,omitempty"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	IsMale        bool        `json:"isMale"`
	DateOfBirth   string      `json:"dob,omitempty"`
	AvatarURL     string      `json:"avatarUrl,omitempty"`
	Bio           string      `json:"bio,omitempty"`
	AccountStatus string      `json:"accountStatus"`
	CreatedAt     string      `json:"createdAt,omitempty"`
	UpdatedAt     string      `json:"updatedAt,omitempty"`
	Experience    *int        `json:"experience"`
	Certificates  StringArray `json:"certificates"`
	Height        *float64    `json:"height,omitempty"`
	Weight        *float64    `json:"weight,omitempty"`
	Biceps        *float64    `json:"biceps,omitempty"`
	Chest         *float64    `json:"chest,omitempty"`
	Waist         *float64    `json:"waist,omitempty"`
	GoalTrainings StringArray `json:"goalTrainings"`
	PTType        PTType      `json:"ptType"`
	GymID         string      `json:"gymId,omitempty"`
	GymName       string      `json:"gymName,omitempty"`
	GymAddress    string      `json:"gymAddress,omitempty"`
	GymHot        bool        `json:"gymHot,omitempty"`
	DistanceKm    *float64    `json:"distance_km,omitempty"`
}

// TrainerFromRow normalizes a store row into a Trainer. Missing or NULL
// columns fall back to zero values; the distance is rounded to two
// decimals.
func TrainerFromRow(row Row) Trainer {
	t := Trainer{
		ID:            row.String("id"),
		FullName:      row.String("full_name"),
		Email:         row.String("email"),
		PhoneNumber:   row.String("phone_number"),
		IsMale:        row.Bool("is_male"),
		DateOfBirth:   row.Time("dob"),
		AvatarURL:     row.String("avatar_url"),
		Bio:           row.String("bio"),
		AccountStatus: row.String("account_status"),
		CreatedAt:     row.Time("created_at"),
		UpdatedAt:     row.Time("updated_at"),
		Experience:    row.IntPtr("experience"),
		Certificates:  row.StringSlice("certificates"),
		Height:        row.FloatPtr("height"),
		Weight:        row.FloatPtr("weight"),
		Biceps:        row.FloatPtr("biceps"),
		Chest:         row.FloatPtr("chest"),
		Waist:         row.FloatPtr("waist"),
		GoalTrainings: row.StringSlice("goal_trainings"),
		GymID:         row.String("gym_id"),
		GymName:       row.String("gym_name"),
		GymAddress:    row.String("gym_address"),
		GymHot:        row.Bool("gym_hot"),
		DistanceKm:    row.RoundedFloatPtr("distance_km"),
	}
	if row.String("pt_type") == string(PTTypeFreelance) {
		t.PTType = PTTypeFreelance
	} else {
		t.PTType = PTTypeGym
	}
	return t
}

// IsFreelance reports whether the trainer offers freelance packages.
func (t Trainer) IsFreelance() bool {
	return t.PTType == PTTypeFreelance
}
