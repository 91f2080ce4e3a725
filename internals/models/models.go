package models

import "time"

// Position is the fixed set of squad roles a player can hold.
type Position string

const (
	Goalkeeper Position = "Goalkeeper"
	Defender   Position = "Defender"
	Midfielder Position = "Midfielder"
	Attacker   Position = "Attacker"
)

// Users Table structure.
type User struct {
	UserID    int       `json:"user_id" gorm:"primaryKey;autoIncrement;not null"`
	Email     string    `json:"email" gorm:"not null;unique"`
	Password  string    `json:"-" gorm:"not null"`
	TeamID    string    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// Teams Table structure. Budget is in the smallest currency unit and must
// never go negative; the schema backs this with a CHECK constraint.
type Team struct {
	TeamID    string    `json:"team_id" gorm:"primaryKey"`
	UserID    int       `json:"user_id" gorm:"not null;unique"`
	Name      string    `json:"name" gorm:"not null"`
	Budget    int64     `json:"budget" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Team) TableName() string { return "teams" }

// Players Table structure. AskingPrice is set if and only if the player is
// on the transfer list.
type Player struct {
	PlayerID         string    `json:"player_id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Position         Position  `json:"position" gorm:"not null"`
	TeamID           string    `json:"team_id" gorm:"not null"`
	Value            int64     `json:"value" gorm:"not null"`
	IsOnTransferList bool      `json:"is_on_transfer_list" gorm:"not null"`
	AskingPrice      *int64    `json:"asking_price,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Player) TableName() string { return "players" }
