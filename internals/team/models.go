package team

import "github.com/RutikKulkarni/Football-Manager/internals/models"

// TeamDetails is a team with its current roster size attached.
type TeamDetails struct {
	models.Team
	PlayerCount int `json:"player_count"`
}

type valueRange struct {
	min int64
	max int64
}

// CreationJob is the message enqueued when a new user registers; the worker
// consumes it and builds the team.
type CreationJob struct {
	UserID int `json:"user_id"`
}
