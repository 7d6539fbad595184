package domain

// Gym is a gym search result. Address is the store-composed display
// string; latitude/longitude stay raw for map pins.
type Gym struct {
	ID          string   `json:"id"`
	GymName     string   `json:"gymName"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	HotResearch bool     `json:"hotResearch"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

// GymFromRow normalizes a store row into a Gym.
func GymFromRow(row Row) Gym {
	return Gym{
		ID:          row.String("id"),
		GymName:     row.String("gym_name"),
		Email:       row.String("email"),
		PhoneNumber: row.String("phone_number"),
		AvatarURL:   row.String("avatar_url"),
		Address:     row.String("address"),
		Latitude:    row.FloatPtr("latitude"),
		Longitude:   row.FloatPtr("longitude"),
		HotResearch: row.Bool("hot_research"),
		CreatedAt:   row.Time("created_at"),
		DistanceKm:  row.RoundedFloatPtr("distance_km"),
	}
}
