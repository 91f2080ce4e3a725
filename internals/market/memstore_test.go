package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/RutikKulkarni/Football-Manager/internals/models"
)

// memStore is an in-memory Store for engine tests. Each transaction works on
// a scratch copy of all state; writes become visible only when fn returns
// nil, so an aborted transaction leaves nothing behind. A single mutex
// serializes transactions, which models the isolation the engine is allowed
// to assume from the real store.
type memStore struct {
	mu      sync.Mutex
	teams   map[string]models.Team
	players map[string]models.Player
}

func newMemStore() *memStore {
	return &memStore{
		teams:   make(map[string]models.Team),
		players: make(map[string]models.Player),
	}
}

func copyPlayer(p models.Player) models.Player {
	if p.AskingPrice != nil {
		price := *p.AskingPrice
		p.AskingPrice = &price
	}
	return p
}

func (s *memStore) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		teams:   make(map[string]models.Team, len(s.teams)),
		players: make(map[string]models.Player, len(s.players)),
	}
	for id, team := range s.teams {
		tx.teams[id] = team
	}
	for id, player := range s.players {
		tx.players[id] = copyPlayer(player)
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.teams = tx.teams
	s.players = tx.players
	return nil
}

func (s *memStore) ListedPlayers(ctx context.Context, f Filter) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var players []models.Player
	for _, p := range s.players {
		if !p.IsOnTransferList {
			continue
		}
		if f.MinPrice != nil && *p.AskingPrice < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && *p.AskingPrice > *f.MaxPrice {
			continue
		}
		if f.PlayerName != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.PlayerName)) {
			continue
		}
		players = append(players, copyPlayer(p))
	}

	sort.Slice(players, func(i, j int) bool { return players[i].PlayerID < players[j].PlayerID })
	return players, nil
}

func (s *memStore) TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make(map[string]string, len(teamIDs))
	for _, id := range teamIDs {
		if team, ok := s.teams[id]; ok {
			names[id] = team.Name
		}
	}
	return names, nil
}

type memTx struct {
	teams   map[string]models.Team
	players map[string]models.Player
}

func (t *memTx) TeamByID(_ context.Context, teamID string) (*models.Team, error) {
	team, ok := t.teams[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return &team, nil
}

func (t *memTx) PlayerOwnedBy(_ context.Context, playerID, teamID string) (*models.Player, error) {
	player, ok := t.players[playerID]
	if !ok || player.TeamID != teamID {
		return nil, fmt.Errorf("%w: player not found or not owned by you", ErrNotFound)
	}
	player = copyPlayer(player)
	return &player, nil
}

func (t *memTx) LockListedPlayer(_ context.Context, playerID string) (*models.Player, error) {
	player, ok := t.players[playerID]
	if !ok || !player.IsOnTransferList {
		return nil, ErrNotAvailable
	}
	player = copyPlayer(player)
	return &player, nil
}

func (t *memTx) RosterSize(_ context.Context, teamID string) (int, error) {
	count := 0
	for _, p := range t.players {
		if p.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (t *memTx) SetListing(_ context.Context, playerID string, askingPrice int64) error {
	player, ok := t.players[playerID]
	if !ok {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	player.IsOnTransferList = true
	player.AskingPrice = &askingPrice
	t.players[playerID] = player
	return nil
}

func (t *memTx) ClearListing(_ context.Context, playerID string) error {
	player, ok := t.players[playerID]
	if !ok {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	player.IsOnTransferList = false
	player.AskingPrice = nil
	t.players[playerID] = player
	return nil
}

func (t *memTx) TransferOwnership(_ context.Context, playerID, toTeamID string) error {
	player, ok := t.players[playerID]
	if !ok {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	player.TeamID = toTeamID
	player.IsOnTransferList = false
	player.AskingPrice = nil
	t.players[playerID] = player
	return nil
}

func (t *memTx) AdjustBudget(_ context.Context, teamID string, delta int64) error {
	team, ok := t.teams[teamID]
	if !ok {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	team.Budget += delta
	t.teams[teamID] = team
	return nil
}

// seedTeam adds a team with a roster of identical midfielders and returns
// the player ids.
func seedTeam(s *memStore, teamID string, budget int64, rosterSize int) []string {
	s.teams[teamID] = models.Team{
		TeamID: teamID,
		UserID: len(s.teams) + 1,
		Name:   teamID + " FC",
		Budget: budget,
	}

	ids := make([]string, 0, rosterSize)
	for i := 0; i < rosterSize; i++ {
		id := fmt.Sprintf("%s-p%d", teamID, i+1)
		s.players[id] = models.Player{
			PlayerID: id,
			Name:     fmt.Sprintf("Player %s", id),
			Position: models.Midfielder,
			TeamID:   teamID,
			Value:    1_000_000,
		}
		ids = append(ids, id)
	}
	return ids
}

func listDirect(s *memStore, playerID string, askingPrice int64) {
	player := s.players[playerID]
	player.IsOnTransferList = true
	player.AskingPrice = &askingPrice
	s.players[playerID] = player
}
