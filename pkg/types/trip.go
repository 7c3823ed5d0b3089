package types

// Trip is the minimal projection of the externally-owned trip record this
// subsystem needs: identity, ownership and copyable content fields.
type Trip struct {
	TripID           string  `json:"trip_id" db:"trip_id"`
	UserID           string  `json:"user_id" db:"user_id"`
	Title            string  `json:"title" db:"title"`
	Description      string  `json:"description" db:"description"`
	Destination      string  `json:"destination" db:"destination"`
	StartDate        string  `json:"start_date" db:"start_date"`
	EndDate          string  `json:"end_date" db:"end_date"`
	ClonedFromTripID *string `json:"cloned_from_trip_id,omitempty" db:"cloned_from_trip_id"`
	CreatedAt        int64   `json:"created_at" db:"created_at"`
	UpdatedAt        int64   `json:"updated_at" db:"updated_at"`
}
