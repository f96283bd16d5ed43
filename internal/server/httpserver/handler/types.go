// Package handler provides HTTP request handlers for redisgate.
package handler

// resultBody is the success envelope of the public contract. Result is
// always present, even when the reply is null.
type resultBody struct {
	Result any `json:"result"`
}

// errorBody is the error envelope of the public contract.
type errorBody struct {
	Error string `json:"error"`
}

// healthBody is the GET /health response.
type healthBody struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}
