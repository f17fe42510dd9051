package models

type SentimentRequest struct {
	Text string `json:"text"`
}

type SentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
