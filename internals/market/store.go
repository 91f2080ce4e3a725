package market

import (
	"context"

	"github.com/RutikKulkarni/Football-Manager/internals/models"
)

// Filter narrows a transfer-market search. Price bounds are inclusive and
// applied by the store; name matches are case-insensitive substrings.
type Filter struct {
	TeamName   string
	PlayerName string
	MinPrice   *int64
	MaxPrice   *int64
}

// Listing is a listed player annotated with its owning team's name.
type Listing struct {
	models.Player
	TeamName string `json:"team_name"`
}

// Tx is the set of reads and conditional writes the engine performs inside
// one transaction. Implementations must hold locks on loaded teams and
// players until commit so that a read-then-write sequence is not subject to
// a lost update.
type Tx interface {
	// TeamByID loads a team and locks it for the rest of the transaction.
	// Returns ErrNotFound when the team does not exist.
	TeamByID(ctx context.Context, teamID string) (*models.Team, error)

	// PlayerOwnedBy loads a player only when the given team owns it.
	// Returns ErrNotFound otherwise, regardless of the player's existence.
	PlayerOwnedBy(ctx context.Context, playerID, teamID string) (*models.Player, error)

	// LockListedPlayer loads a player filtered to "currently listed" and
	// locks it. Returns ErrNotAvailable when the player is missing or no
	// longer listed, which is how a lost purchase race surfaces.
	LockListedPlayer(ctx context.Context, playerID string) (*models.Player, error)

	// RosterSize counts the players currently owned by a team.
	RosterSize(ctx context.Context, teamID string) (int, error)

	SetListing(ctx context.Context, playerID string, askingPrice int64) error
	ClearListing(ctx context.Context, playerID string) error

	// TransferOwnership moves a player to a new team and clears its listing.
	TransferOwnership(ctx context.Context, playerID, toTeamID string) error

	// AdjustBudget adds delta (possibly negative) to a team's budget.
	AdjustBudget(ctx context.Context, teamID string, delta int64) error
}

// Store is the transactional backing store for the transfer market.
// InTransaction runs fn with all-or-nothing semantics: any error aborts
// every write made through the Tx. Write conflicts detected by the store
// surface as ErrConflict; the engine never retries on the caller's behalf.
type Store interface {
	InTransaction(ctx context.Context, fn func(tx Tx) error) error

	// ListedPlayers returns every currently listed player matching the
	// store-side parts of the filter (price bounds, player-name substring).
	ListedPlayers(ctx context.Context, f Filter) ([]models.Player, error)

	// TeamNames resolves team ids to display names.
	TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error)
}
