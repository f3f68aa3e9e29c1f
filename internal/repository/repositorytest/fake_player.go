// Package repositorytest provides an in-memory repository.Player
// implementation for service tests.
package repositorytest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// FakePlayer is a thread-safe in-memory player store. Transactions mutate the
// live store and restore a snapshot on rollback, mirroring the visibility a
// single-connection database would give.
type FakePlayer struct {
	mu         sync.Mutex
	players    map[string]*domain.Player
	plots      map[int64]*domain.Plot
	inventory  map[string]map[string]int
	nextPlotID int64

	// BeginTxErr, when set, is returned by BeginTx to simulate outages.
	BeginTxErr error
}

// NewFakePlayer creates an empty fake store.
func NewFakePlayer() *FakePlayer {
	return &FakePlayer{
		players:   make(map[string]*domain.Player),
		plots:     make(map[int64]*domain.Plot),
		inventory: make(map[string]map[string]int),
	}
}

// Seed inserts a player and their starting plots directly, bypassing
// transactional bookkeeping. Test setup helper.
func (f *FakePlayer) Seed(player domain.Player, startingPlots int) domain.Player {
	f.mu.Lock()
	defer f.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	f.players[player.ID] = &player
	for i := 0; i < startingPlots; i++ {
		f.nextPlotID++
		f.plots[f.nextPlotID] = &domain.Plot{ID: f.nextPlotID, PlayerID: player.ID}
	}
	return player
}

// SeedInventory sets an inventory quantity directly. Test setup helper.
func (f *FakePlayer) SeedInventory(playerID, itemName string, quantity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setQuantityLocked(playerID, itemName, quantity)
}

func (f *FakePlayer) setQuantityLocked(playerID, itemName string, quantity int) {
	inv := f.inventory[playerID]
	if inv == nil {
		inv = make(map[string]int)
		f.inventory[playerID] = inv
	}
	if quantity == 0 {
		delete(inv, itemName)
		return
	}
	inv[itemName] = quantity
}

func (f *FakePlayer) CreatePlayer(_ context.Context, player *domain.Player, startingPlots int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.players {
		if existing.Username == player.Username {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
		}
	}

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	clone := *player
	f.players[player.ID] = &clone
	for i := 0; i < startingPlots; i++ {
		f.nextPlotID++
		f.plots[f.nextPlotID] = &domain.Plot{ID: f.nextPlotID, PlayerID: player.ID}
	}
	return nil
}

func (f *FakePlayer) GetPlayerByUsername(_ context.Context, username string) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.players {
		if p.Username == username {
			clone := *p
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
}

func (f *FakePlayer) GetPlayerByID(_ context.Context, playerID string) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getPlayerLocked(playerID)
}

func (f *FakePlayer) getPlayerLocked(playerID string) (*domain.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	clone := *p
	return &clone, nil
}

func (f *FakePlayer) ListPlayers(_ context.Context) ([]domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	players := make([]domain.Player, 0, len(f.players))
	for _, p := range f.players {
		players = append(players, *p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].ID < players[j].ID
		}
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})
	return players, nil
}

func (f *FakePlayer) DeletePlayer(_ context.Context, playerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.players[playerID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	delete(f.players, playerID)
	delete(f.inventory, playerID)
	for id, plot := range f.plots {
		if plot.PlayerID == playerID {
			delete(f.plots, id)
		}
	}
	return nil
}

func (f *FakePlayer) GetPlots(_ context.Context, playerID string) ([]domain.Plot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getPlotsLocked(playerID), nil
}

func (f *FakePlayer) getPlotsLocked(playerID string) []domain.Plot {
	plots := []domain.Plot{}
	for _, plot := range f.plots {
		if plot.PlayerID == playerID {
			plots = append(plots, *plot)
		}
	}
	sort.Slice(plots, func(i, j int) bool { return plots[i].ID < plots[j].ID })
	return plots
}

func (f *FakePlayer) GetInventory(_ context.Context, playerID string) ([]domain.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := []domain.InventoryEntry{}
	for name, qty := range f.inventory[playerID] {
		entries = append(entries, domain.InventoryEntry{ItemName: name, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ItemName < entries[j].ItemName })
	return entries, nil
}

func (f *FakePlayer) BeginTx(_ context.Context) (repository.PlayerTx, error) {
	if f.BeginTxErr != nil {
		return nil, f.BeginTxErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return &fakeTx{store: f, snapshot: f.snapshotLocked()}, nil
}

type storeSnapshot struct {
	players    map[string]*domain.Player
	plots      map[int64]*domain.Plot
	inventory  map[string]map[string]int
	nextPlotID int64
}

func (f *FakePlayer) snapshotLocked() storeSnapshot {
	snap := storeSnapshot{
		players:    make(map[string]*domain.Player, len(f.players)),
		plots:      make(map[int64]*domain.Plot, len(f.plots)),
		inventory:  make(map[string]map[string]int, len(f.inventory)),
		nextPlotID: f.nextPlotID,
	}
	for id, p := range f.players {
		clone := *p
		snap.players[id] = &clone
	}
	for id, plot := range f.plots {
		clone := *plot
		snap.plots[id] = &clone
	}
	for id, inv := range f.inventory {
		cloneInv := make(map[string]int, len(inv))
		for k, v := range inv {
			cloneInv[k] = v
		}
		snap.inventory[id] = cloneInv
	}
	return snap
}

type fakeTx struct {
	store    *FakePlayer
	snapshot storeSnapshot
	closed   bool
}

func (t *fakeTx) GetPlayerForUpdate(_ context.Context, playerID string) (*domain.Player, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.getPlayerLocked(playerID)
}

func (t *fakeTx) UpdatePlayer(_ context.Context, player domain.Player) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if _, ok := t.store.players[player.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, player.ID)
	}
	clone := player
	t.store.players[player.ID] = &clone
	return nil
}

func (t *fakeTx) GetPlotForUpdate(_ context.Context, plotID int64) (*domain.Plot, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	plot, ok := t.store.plots[plotID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
	}
	clone := *plot
	return &clone, nil
}

func (t *fakeTx) GetPlots(_ context.Context, playerID string) ([]domain.Plot, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.getPlotsLocked(playerID), nil
}

func (t *fakeTx) CreatePlot(_ context.Context, playerID string) (int64, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if _, ok := t.store.players[playerID]; !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	t.store.nextPlotID++
	id := t.store.nextPlotID
	t.store.plots[id] = &domain.Plot{ID: id, PlayerID: playerID}
	return id, nil
}

func (t *fakeTx) UpdatePlot(_ context.Context, plot domain.Plot) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if _, ok := t.store.plots[plot.ID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plot.ID)
	}
	clone := plot
	t.store.plots[plot.ID] = &clone
	return nil
}

func (t *fakeTx) GetInventoryQuantity(_ context.Context, playerID, itemName string) (int, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.inventory[playerID][itemName], nil
}

func (t *fakeTx) SetInventoryQuantity(_ context.Context, playerID, itemName string, quantity int) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}
	t.store.setQuantityLocked(playerID, itemName, quantity)
	return nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.closed {
		return fmt.Errorf("%s", domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.closed {
		return fmt.Errorf("%s", domain.ErrMsgTxClosed)
	}
	t.closed = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.players = t.snapshot.players
	t.store.plots = t.snapshot.plots
	t.store.inventory = t.snapshot.inventory
	t.store.nextPlotID = t.snapshot.nextPlotID
	return nil
}
