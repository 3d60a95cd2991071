package models

// GameEvent is published to Kafka after a game-state write commits.
// Subscribers eventually observe every committed pixel and burn event;
// no ordering is guaranteed beyond partition order.
type GameEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	WalletAddress string `json:"wallet_address"`
	Timestamp     int64  `json:"timestamp"`

	// Placement events.
	Placed     int `json:"placed,omitempty"`
	Overwrites int `json:"overwrites,omitempty"`

	// Burn events.
	TokensBurned int64 `json:"tokens_burned,omitempty"`
	NewStage     int   `json:"new_stage,omitempty"`
	BoardSize    int   `json:"board_size,omitempty"`
}
