package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/economy"
	"github.com/willobee/FarmPatch_Go/internal/farm"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/land"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository/repositorytest"
	"github.com/willobee/FarmPatch_Go/internal/user"
)

// testEnv bundles real services over the in-memory repository so handlers
// are exercised end to end without a database.
type testEnv struct {
	repo    *repositorytest.FakePlayer
	users   user.Service
	farms   farm.Service
	economy economy.Service
	lands   land.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	seedPrice := 10
	catalog := item.NewCatalog([]item.Definition{
		{Name: "carrot", DisplayName: "Carrot", SellPrice: 30},
		{
			Name:        "carrot_seed",
			DisplayName: "Carrot Seed",
			BuyPrice:    &seedPrice,
			SellPrice:   5,
			Growth:      &item.Growth{Crop: "carrot", GrowSeconds: 60, StageCount: 4, Yield: 1, XPReward: 10},
		},
	})

	repo := repositorytest.NewFakePlayer()
	locks := concurrency.NewLockManager()
	curve := progression.NewFlatCurve()

	return &testEnv{
		repo:    repo,
		users:   user.NewService(repo, locks, curve, catalog, user.Config{}),
		farms:   farm.NewService(repo, locks, curve, catalog),
		economy: economy.NewService(repo, locks, catalog),
		lands:   land.NewService(repo, locks, curve),
	}
}

// register creates an account through the service and returns the player ID.
func (e *testEnv) register(t *testing.T, username string) string {
	t.Helper()
	player, err := e.users.Register(context.Background(), username, "hunter2hunter2")
	require.NoError(t, err)
	return player.ID
}

// plantReady puts a harvestable carrot on the player's first plot.
func (e *testEnv) plantReady(t *testing.T, playerID string) int64 {
	t.Helper()
	ctx := context.Background()

	plots, err := e.repo.GetPlots(ctx, playerID)
	require.NoError(t, err)
	require.NotEmpty(t, plots)

	crop := "carrot"
	plantedAt := time.Now().UTC().Add(-2 * time.Minute)
	tx, err := e.repo.BeginTx(ctx)
	require.NoError(t, err)
	plot := plots[0]
	plot.Crop = &crop
	plot.PlantedAt = &plantedAt
	require.NoError(t, tx.UpdatePlot(ctx, plot))
	require.NoError(t, tx.Commit(ctx))
	return plot.ID
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func newRecorderFor(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func getRequest(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func getDeleteRequest(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// giveGold sets the player's gold directly for test setup.
func (e *testEnv) giveGold(t *testing.T, playerID string, gold int) {
	t.Helper()
	ctx := context.Background()

	tx, err := e.repo.BeginTx(ctx)
	require.NoError(t, err)
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	require.NoError(t, err)
	player.Gold = gold
	require.NoError(t, tx.UpdatePlayer(ctx, *player))
	require.NoError(t, tx.Commit(ctx))
}

// giveXP sets the player's lifetime xp directly for test setup.
func (e *testEnv) giveXP(t *testing.T, playerID string, xp int64) {
	t.Helper()
	ctx := context.Background()

	tx, err := e.repo.BeginTx(ctx)
	require.NoError(t, err)
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	require.NoError(t, err)
	player.XP = xp
	require.NoError(t, tx.UpdatePlayer(ctx, *player))
	require.NoError(t, tx.Commit(ctx))
}
