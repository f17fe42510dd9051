package clients

import "time"

const (
	DEFAULT_TIMEOUT = 5 * time.Second
	USER_AGENT      = "sentimentctl/1.0 (+https://github.com/spacesedan/sentiment-api)"
)
