package responses

type Auth struct {
	Token string `json:"token"`
}

type AddDoctor struct {
	DoctorID string `json:"doctorId"`
}
