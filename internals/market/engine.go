package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/RutikKulkarni/Football-Manager/internals/models"
	"gorm.io/gorm"
)

// TransferService orchestrates listing, unlisting and buying players. Every
// write runs inside a single store transaction; any failure aborts all of it.
type TransferService struct {
	Store Store
}

func New(db *gorm.DB) *TransferService {
	return &TransferService{Store: NewGormStore(db)}
}

func NewWithStore(store Store) *TransferService {
	return &TransferService{Store: store}
}

// PurchaseResult is returned by a successful BuyPlayer call.
type PurchaseResult struct {
	Player       models.Player `json:"player"`
	PricePaid    int64         `json:"price_paid"`
	SellerTeamID string        `json:"seller_team_id"`
}

// ListPlayer puts one of the caller's players on the transfer list at the
// given asking price. Re-listing an already listed player just updates the
// price.
func (ts *TransferService) ListPlayer(ctx context.Context, teamID, playerID string, askingPrice int64) error {
	if askingPrice <= 0 {
		return fmt.Errorf("%w: asking price must be positive", ErrInvalidArgument)
	}

	return ts.Store.InTransaction(ctx, func(tx Tx) error {
		if _, err := tx.PlayerOwnedBy(ctx, playerID, teamID); err != nil {
			return err
		}

		size, err := tx.RosterSize(ctx, teamID)
		if err != nil {
			return err
		}
		if !CanList(size) {
			return fmt.Errorf("%w: team must have more than %d players to list one", ErrPolicyViolation, MinSquadSize)
		}

		return tx.SetListing(ctx, playerID, askingPrice)
	})
}

// UnlistPlayer takes one of the caller's players off the transfer list.
// Unlisting a player that is not listed is a no-op.
func (ts *TransferService) UnlistPlayer(ctx context.Context, teamID, playerID string) error {
	return ts.Store.InTransaction(ctx, func(tx Tx) error {
		if _, err := tx.PlayerOwnedBy(ctx, playerID, teamID); err != nil {
			return err
		}
		return tx.ClearListing(ctx, playerID)
	})
}

// BuyPlayer executes a cross-team purchase as one atomic transaction: the
// buyer pays 95% of the asking price, the seller receives it, and the player
// changes hands with its listing cleared. Two concurrent buys of the same
// player end with exactly one winner; the loser sees ErrNotAvailable or, if
// the store detects the race at commit, ErrConflict.
func (ts *TransferService) BuyPlayer(ctx context.Context, buyerTeamID, playerID string) (*PurchaseResult, error) {
	var result PurchaseResult

	err := ts.Store.InTransaction(ctx, func(tx Tx) error {
		buyer, err := tx.TeamByID(ctx, buyerTeamID)
		if err != nil {
			return err
		}

		player, err := tx.LockListedPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		if player.TeamID == buyer.TeamID {
			return fmt.Errorf("%w: cannot buy your own player", ErrPolicyViolation)
		}

		seller, err := tx.TeamByID(ctx, player.TeamID)
		if err != nil {
			return fmt.Errorf("seller team: %w", err)
		}

		price := PurchasePrice(*player.AskingPrice)

		if buyer.Budget < price {
			return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, price, buyer.Budget)
		}

		buyerSize, err := tx.RosterSize(ctx, buyer.TeamID)
		if err != nil {
			return err
		}
		sellerSize, err := tx.RosterSize(ctx, seller.TeamID)
		if err != nil {
			return err
		}

		if !CanReceivePurchase(buyerSize) {
			return fmt.Errorf("%w: cannot exceed %d players", ErrPolicyViolation, MaxSquadSize)
		}
		if !SellerRemainsLegal(sellerSize - 1) {
			return fmt.Errorf("%w: seller cannot go below %d players", ErrPolicyViolation, MinSquadSize)
		}

		if err := tx.AdjustBudget(ctx, buyer.TeamID, -price); err != nil {
			return err
		}
		if err := tx.AdjustBudget(ctx, seller.TeamID, price); err != nil {
			return err
		}
		if err := tx.TransferOwnership(ctx, player.PlayerID, buyer.TeamID); err != nil {
			return err
		}

		bought := *player
		bought.TeamID = buyer.TeamID
		bought.IsOnTransferList = false
		bought.AskingPrice = nil

		result = PurchaseResult{
			Player:       bought,
			PricePaid:    price,
			SellerTeamID: seller.TeamID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Search returns all currently listed players matching the filter. Price
// bounds and the player-name substring are pushed down to the store; the
// team-name substring is applied after resolving each owner's name.
func (ts *TransferService) Search(ctx context.Context, f Filter) ([]Listing, error) {
	players, err := ts.Store.ListedPlayers(ctx, f)
	if err != nil {
		return nil, err
	}

	teamIDs := make([]string, 0, len(players))
	seen := make(map[string]bool)
	for _, p := range players {
		if !seen[p.TeamID] {
			seen[p.TeamID] = true
			teamIDs = append(teamIDs, p.TeamID)
		}
	}

	names, err := ts.Store.TeamNames(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(players))
	for _, p := range players {
		name := names[p.TeamID]
		if f.TeamName != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(f.TeamName)) {
			continue
		}
		listings = append(listings, Listing{Player: p, TeamName: name})
	}
	return listings, nil
}
