package entity

import "time"

// TokenUsage records the tokens consumed by one model call.
type TokenUsage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Model     string    `gorm:"index;not null" json:"model"`
	TokensIn  int64     `gorm:"not null;default:0" json:"tokens_in"`
	TokensOut int64     `gorm:"not null;default:0" json:"tokens_out"`
	CreatedAt time.Time `json:"created_at"`
}

func (TokenUsage) TableName() string {
	return "token_usage"
}

// TokenUsageByModel is the per-model aggregate shown on the dashboard.
type TokenUsageByModel struct {
	Model string `json:"model"`
	Tin   int64  `json:"tin"`
	Tout  int64  `json:"tout"`
	Total int64  `json:"total"`
}
