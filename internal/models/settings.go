package models

import "time"

// GameSettingsDB is the singleton row (id = 1) in pixey_game_settings.
// The board only ever grows; stage transitions are monotonic.
type GameSettingsDB struct {
	ID                int       `db:"id" json:"-"`
	CurrentStage      int       `db:"current_stage" json:"current_stage"`
	TotalTokensBurned int64     `db:"total_tokens_burned" json:"total_tokens_burned"`
	BoardWidth        int       `db:"board_width" json:"board_width"`
	BoardHeight       int       `db:"board_height" json:"board_height"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// BoardStage describes one board-size tier and the cumulative burn
// required to unlock it.
type BoardStage struct {
	Stage         int
	Size          int
	RequiredBurns int64
}

// BoardStages lists the tiers in ascending order.
var BoardStages = []BoardStage{
	{Stage: 1, Size: 200, RequiredBurns: 0},
	{Stage: 2, Size: 500, RequiredBurns: 20000},
	{Stage: 3, Size: 1000, RequiredBurns: 100000},
}

// StageForTotalBurned returns the highest stage unlocked by the given
// cumulative burned-token total.
func StageForTotalBurned(total int64) BoardStage {
	stage := BoardStages[0]
	for _, s := range BoardStages {
		if total >= s.RequiredBurns {
			stage = s
		}
	}
	return stage
}
