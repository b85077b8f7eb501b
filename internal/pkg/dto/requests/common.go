package requests

type Address struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}
