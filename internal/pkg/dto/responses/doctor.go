package responses

// DoctorPublic is the patient-facing roster entry: no password, no email.
type DoctorPublic struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Image       string              `json:"image"`
	Speciality  string              `json:"speciality"`
	Degree      string              `json:"degree"`
	Experience  string              `json:"experience"`
	About       string              `json:"about"`
	Fees        int64               `json:"fees"`
	Address     Address             `json:"address"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}

// DoctorAdminView additionally exposes the email to the admin panel.
type DoctorAdminView struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Image       string              `json:"image"`
	Speciality  string              `json:"speciality"`
	Degree      string              `json:"degree"`
	Experience  string              `json:"experience"`
	About       string              `json:"about"`
	Fees        int64               `json:"fees"`
	Address     Address             `json:"address"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}

type DoctorProfile struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Image       string              `json:"image"`
	Speciality  string              `json:"speciality"`
	Degree      string              `json:"degree"`
	Experience  string              `json:"experience"`
	About       string              `json:"about"`
	Fees        int64               `json:"fees"`
	Address     Address             `json:"address"`
	Available   bool                `json:"available"`
	SlotsBooked map[string][]string `json:"slots_booked"`
}
