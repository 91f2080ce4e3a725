package team

import (
	"testing"

	"github.com/RutikKulkarni/Football-Manager/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSquadComposition(t *testing.T) {
	players := GenerateSquad("team-1")
	require.Len(t, players, 20)

	counts := make(map[models.Position]int)
	ids := make(map[string]bool)
	for _, p := range players {
		counts[p.Position]++
		ids[p.PlayerID] = true

		assert.Equal(t, "team-1", p.TeamID)
		assert.False(t, p.IsOnTransferList)
		assert.Nil(t, p.AskingPrice)

		r := valueRanges[p.Position]
		assert.GreaterOrEqual(t, p.Value, r.min, "player %s", p.Name)
		assert.LessOrEqual(t, p.Value, r.max, "player %s", p.Name)
	}

	assert.Equal(t, 3, counts[models.Goalkeeper])
	assert.Equal(t, 6, counts[models.Defender])
	assert.Equal(t, 6, counts[models.Midfielder])
	assert.Equal(t, 5, counts[models.Attacker])
	assert.Len(t, ids, 20, "player ids must be unique")
}

func TestGenerateSquadNaming(t *testing.T) {
	players := GenerateSquad("team-1")

	perPosition := make(map[models.Position][]string)
	for _, p := range players {
		perPosition[p.Position] = append(perPosition[p.Position], p.Name)
	}

	assert.Contains(t, perPosition[models.Goalkeeper], "GK Player 1")
	assert.Contains(t, perPosition[models.Goalkeeper], "GK Player 3")
	assert.Contains(t, perPosition[models.Defender], "DEF Player 6")
	assert.Contains(t, perPosition[models.Midfielder], "MID Player 1")
	assert.Contains(t, perPosition[models.Attacker], "ATT Player 5")
}

func TestTeamName(t *testing.T) {
	assert.Equal(t, "alice FC", teamName("alice@example.com"))
	assert.Equal(t, "bob FC", teamName("bob"))
}
