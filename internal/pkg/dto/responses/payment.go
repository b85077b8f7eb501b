package responses

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentIntentResponse is the decoded gateway reply.
type PaymentIntentResponse struct {
	IntentID     string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}
