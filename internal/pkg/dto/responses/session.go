package responses

type JourneySession struct {
	JourneyID string `json:"journey_id"`
	Token     string `json:"token"`
}
