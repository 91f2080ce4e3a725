package market

import (
	"context"
	"testing"

	"github.com/RutikKulkarni/Football-Manager/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

func searchFixture() (*memStore, *TransferService) {
	store := newMemStore()
	alpha := seedTeam(store, "alpha", 5_000_000, 20)
	beta := seedTeam(store, "beta", 5_000_000, 20)

	rename := func(id, name string) {
		p := store.players[id]
		p.Name = name
		store.players[id] = p
	}
	rename(alpha[0], "Star Striker")
	rename(alpha[1], "Quiet Keeper")
	rename(beta[0], "Starling Back")

	listDirect(store, alpha[0], 100)
	listDirect(store, alpha[1], 200)
	listDirect(store, beta[0], 300)

	return store, NewWithStore(store)
}

func TestSearchNoFilterReturnsAllListed(t *testing.T) {
	_, svc := searchFixture()

	listings, err := svc.Search(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, listings, 3)

	for _, l := range listings {
		assert.True(t, l.IsOnTransferList)
		assert.NotEmpty(t, l.TeamName)
	}
}

func TestSearchPriceBoundsInclusive(t *testing.T) {
	_, svc := searchFixture()

	listings, err := svc.Search(context.Background(), Filter{
		MinPrice: int64ptr(100),
		MaxPrice: int64ptr(200),
	})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.GreaterOrEqual(t, *l.AskingPrice, int64(100))
		assert.LessOrEqual(t, *l.AskingPrice, int64(200))
	}
}

func TestSearchPlayerNameCaseInsensitive(t *testing.T) {
	_, svc := searchFixture()

	listings, err := svc.Search(context.Background(), Filter{PlayerName: "sTaR"})
	require.NoError(t, err)
	require.Len(t, listings, 2)

	names := []string{listings[0].Name, listings[1].Name}
	assert.Contains(t, names, "Star Striker")
	assert.Contains(t, names, "Starling Back")
}

func TestSearchTeamNameAppliedAfterResolution(t *testing.T) {
	_, svc := searchFixture()

	listings, err := svc.Search(context.Background(), Filter{TeamName: "ALPHA"})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, "alpha FC", l.TeamName)
	}
}

func TestSearchCombinedFilters(t *testing.T) {
	_, svc := searchFixture()

	listings, err := svc.Search(context.Background(), Filter{
		TeamName:   "alpha",
		PlayerName: "star",
		MaxPrice:   int64ptr(150),
	})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Star Striker", listings[0].Name)
}

func TestSearchExcludesUnlisted(t *testing.T) {
	store, svc := searchFixture()

	// Delist everything; the market must come back empty even though the
	// players still exist.
	for id, p := range store.players {
		p.IsOnTransferList = false
		p.AskingPrice = nil
		store.players[id] = p
	}

	listings, err := svc.Search(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, listings)

	var all []models.Player
	for _, p := range store.players {
		all = append(all, p)
	}
	assert.Len(t, all, 40)
}
