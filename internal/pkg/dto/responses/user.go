package responses

type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type UserProfile struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Image   string  `json:"image"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Dob     string  `json:"dob"`
	Gender  string  `json:"gender"`
}
