package dto

// RecordTokenUsageRequest is the DTO for recording token consumption.
type RecordTokenUsageRequest struct {
	Model     string `json:"model"`
	TokensIn  int64  `json:"tokens_in"`
	TokensOut int64  `json:"tokens_out"`
}
