package team

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RutikKulkarni/Football-Manager/internals/models"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

// StartingBudget is every new team's budget in the smallest currency unit.
const StartingBudget int64 = 5_000_000

// ErrTeamNotReady is returned while the async team-creation job for a user
// has not run yet.
var ErrTeamNotReady = errors.New("team not found, creation may still be in progress")

type TeamService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

// squadShape is the fixed initial composition: 20 players in total.
var squadShape = []struct {
	position models.Position
	count    int
}{
	{models.Goalkeeper, 3},
	{models.Defender, 6},
	{models.Midfielder, 6},
	{models.Attacker, 5},
}

var positionPrefix = map[models.Position]string{
	models.Goalkeeper: "GK",
	models.Defender:   "DEF",
	models.Midfielder: "MID",
	models.Attacker:   "ATT",
}

var valueRanges = map[models.Position]valueRange{
	models.Goalkeeper: {500_000, 2_000_000},
	models.Defender:   {800_000, 3_000_000},
	models.Midfielder: {1_000_000, 4_000_000},
	models.Attacker:   {1_200_000, 5_000_000},
}

func (t *TeamService) GetTeamByUser(userID int) (*TeamDetails, error) {
	var team models.Team
	err := t.DB.Table("teams").Where("user_id = ?", userID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotReady
	}
	if err != nil {
		return nil, err
	}

	var count int64
	if err := t.DB.Table("players").Where("team_id = ?", team.TeamID).Count(&count).Error; err != nil {
		return nil, err
	}

	return &TeamDetails{Team: team, PlayerCount: int(count)}, nil
}

func (t *TeamService) GetPlayers(userID int) ([]models.Player, error) {
	details, err := t.GetTeamByUser(userID)
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, details.PlayerCount)
	err = t.DB.Table("players").Where("team_id = ?", details.TeamID).Order("created_at").Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// UserIDForTeam resolves the owning user of a team.
func (t *TeamService) UserIDForTeam(teamID string) (int, error) {
	var team models.Team
	err := t.DB.Table("teams").Where("team_id = ?", teamID).First(&team).Error
	if err != nil {
		return 0, err
	}
	return team.UserID, nil
}

// CreateTeamForUser builds the user's team with the starting budget and a
// generated 20-player squad. Safe to run more than once: a user who already
// has a team is left untouched.
func (t *TeamService) CreateTeamForUser(userID int) error {
	var user models.User
	err := t.DB.Table("users").Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return fmt.Errorf("user %d: %w", userID, err)
	}

	var existing int64
	err = t.DB.Table("teams").Where("user_id = ?", userID).Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	team := models.Team{
		TeamID: uuid.NewString(),
		UserID: userID,
		Name:   teamName(user.Email),
		Budget: StartingBudget,
	}
	players := GenerateSquad(team.TeamID)

	return t.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("teams").Create(&team).Error; err != nil {
			return err
		}
		if err := tx.Table("players").Create(&players).Error; err != nil {
			return err
		}
		return tx.Table("users").Where("user_id = ?", userID).Update("team_id", team.TeamID).Error
	})
}

func teamName(email string) string {
	return strings.Split(email, "@")[0] + " FC"
}

// GenerateSquad builds the fixed initial roster for a team: 3 goalkeepers,
// 6 defenders, 6 midfielders and 5 attackers, each with a market value drawn
// from its position's range.
func GenerateSquad(teamID string) []models.Player {
	rand.Seed(uint64(time.Now().UnixNano()))

	players := make([]models.Player, 0, 20)
	for _, shape := range squadShape {
		for i := 0; i < shape.count; i++ {
			r := valueRanges[shape.position]
			players = append(players, models.Player{
				PlayerID: uuid.NewString(),
				Name:     fmt.Sprintf("%s Player %d", positionPrefix[shape.position], i+1),
				Position: shape.position,
				TeamID:   teamID,
				Value:    r.min + rand.Int63n(r.max-r.min+1),
			})
		}
	}
	return players
}
