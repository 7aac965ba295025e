package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "http://localhost:5000/api"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBodyBytes  = 512
)
