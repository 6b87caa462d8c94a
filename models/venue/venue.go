package venue

// Venue is a training location and its weekly sessions, as published in a
// region's schedule sheet.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Website     string   `json:"website,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Distance    string   `json:"distance,omitempty"`
	Fee         float64  `json:"fee"`
	DropInFee   *float64 `json:"drop_in_fee,omitempty"`
	Coordinates string   `json:"coordinates,omitempty"` // "lat,lng"
	LastUpdated *string  `json:"last_updated,omitempty"` // YYYY-MM-DD

	Sessions []Session `json:"sessions"`
}

// Session is one recurring weekly training slot.
type Session struct {
	Day  Weekday     `json:"day"`
	Time string      `json:"time"`
	Type SessionType `json:"type"`
}

// IsFree reports whether the base session fee is zero.
func (v Venue) IsFree() bool {
	return v.Fee == 0
}

// Clone returns a copy of v that shares no slices or pointers with it.
func (v Venue) Clone() Venue {
	out := v
	out.Sessions = append([]Session(nil), v.Sessions...)
	if v.DropInFee != nil {
		fee := *v.DropInFee
		out.DropInFee = &fee
	}
	if v.LastUpdated != nil {
		date := *v.LastUpdated
		out.LastUpdated = &date
	}
	return out
}
