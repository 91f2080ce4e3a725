package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/RutikKulkarni/Football-Manager/internals/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore backs the transfer market with postgres. Rows loaded inside a
// transaction are locked with SELECT ... FOR UPDATE, so a second buyer of
// the same player blocks until the first commits and then finds the listing
// gone.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) InTransaction(ctx context.Context, fn func(tx Tx) error) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

func (s *GormStore) ListedPlayers(ctx context.Context, f Filter) ([]models.Player, error) {
	q := s.DB.WithContext(ctx).Model(&models.Player{}).Where("is_on_transfer_list = ?", true)
	if f.MinPrice != nil {
		q = q.Where("asking_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("asking_price <= ?", *f.MaxPrice)
	}
	if f.PlayerName != "" {
		q = q.Where("name ILIKE ?", "%"+f.PlayerName+"%")
	}

	var players []models.Player
	if err := q.Order("created_at").Find(&players).Error; err != nil {
		return nil, classify(err)
	}
	return players, nil
}

func (s *GormStore) TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return names, nil
	}

	var teams []models.Team
	if err := s.DB.WithContext(ctx).Where("team_id IN ?", teamIDs).Find(&teams).Error; err != nil {
		return nil, classify(err)
	}
	for _, t := range teams {
		names[t.TeamID] = t.Name
	}
	return names, nil
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) TeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	err := t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("team_id = ?", teamID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (t *gormTx) PlayerOwnedBy(ctx context.Context, playerID, teamID string) (*models.Player, error) {
	var player models.Player
	err := t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_id = ? AND team_id = ?", playerID, teamID).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: player not found or not owned by you", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (t *gormTx) LockListedPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	var player models.Player
	err := t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("player_id = ? AND is_on_transfer_list = ?", playerID, true).First(&player).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotAvailable
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (t *gormTx) RosterSize(ctx context.Context, teamID string) (int, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(&models.Player{}).Where("team_id = ?", teamID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (t *gormTx) SetListing(ctx context.Context, playerID string, askingPrice int64) error {
	return t.db.WithContext(ctx).
		Exec("UPDATE players SET is_on_transfer_list = true, asking_price = ? WHERE player_id = ?", askingPrice, playerID).Error
}

func (t *gormTx) ClearListing(ctx context.Context, playerID string) error {
	return t.db.WithContext(ctx).
		Exec("UPDATE players SET is_on_transfer_list = false, asking_price = NULL WHERE player_id = ?", playerID).Error
}

func (t *gormTx) TransferOwnership(ctx context.Context, playerID, toTeamID string) error {
	return t.db.WithContext(ctx).
		Exec("UPDATE players SET team_id = ?, is_on_transfer_list = false, asking_price = NULL WHERE player_id = ?", toTeamID, playerID).Error
}

func (t *gormTx) AdjustBudget(ctx context.Context, teamID string, delta int64) error {
	return t.db.WithContext(ctx).
		Exec("UPDATE teams SET budget = budget + ? WHERE team_id = ?", delta, teamID).Error
}

// classify maps storage errors onto the engine's error kinds. Errors already
// carrying a kind pass through untouched; serialization failures, deadlocks
// and lock timeouts become ErrConflict; anything else is a transient storage
// fault.
func classify(err error) error {
	for _, kind := range []error{
		ErrNotFound, ErrInvalidArgument, ErrPolicyViolation,
		ErrInsufficientFunds, ErrNotAvailable, ErrConflict, ErrUnavailable,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
