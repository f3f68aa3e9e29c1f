package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/willobee/FarmPatch_Go/internal/concurrency"
	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/item"
	"github.com/willobee/FarmPatch_Go/internal/logger"
	"github.com/willobee/FarmPatch_Go/internal/metrics"
	"github.com/willobee/FarmPatch_Go/internal/progression"
	"github.com/willobee/FarmPatch_Go/internal/repository"
)

// Service defines the interface for account and state operations
type Service interface {
	Register(ctx context.Context, username, password string) (*domain.Player, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Player, error)
	GetState(ctx context.Context, playerID string) (*domain.PlayerState, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error)
	ResolvePlayerID(ctx context.Context, username string) (string, error)

	// Admin surface
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	SetGold(ctx context.Context, username string, gold int) (*domain.Player, error)
	DeleteAccount(ctx context.Context, username string) error
}

// Config carries the registration defaults
type Config struct {
	StartingGold  int
	StartingPlots int
}

type service struct {
	repo    repository.Player
	locks   *concurrency.LockManager
	curve   progression.Curve
	catalog *item.Catalog
	cfg     Config
	names   *nameCache
}

// NewService creates a new user service
func NewService(repo repository.Player, locks *concurrency.LockManager, curve progression.Curve, catalog *item.Catalog, cfg Config) Service {
	if cfg.StartingGold == 0 {
		cfg.StartingGold = domain.DefaultStartingGold
	}
	if cfg.StartingPlots == 0 {
		cfg.StartingPlots = domain.DefaultStartingPlots
	}
	return &service{
		repo:    repo,
		locks:   locks,
		curve:   curve,
		catalog: catalog,
		cfg:     cfg,
		names:   newNameCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// Register creates a new account with the configured starting gold and plots.
func (s *service) Register(ctx context.Context, username, password string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	player := &domain.Player{
		Username:      username,
		PasswordHash:  string(hash),
		Gold:          s.cfg.StartingGold,
		XP:            0,
		UnlockedPlots: s.cfg.StartingPlots,
	}
	if err := s.repo.CreatePlayer(ctx, player, s.cfg.StartingPlots); err != nil {
		return nil, err
	}

	s.names.Set(username, player.ID)
	metrics.PlayersRegistered.Inc()
	log.Info("Player registered", "playerID", player.ID, "username", username)

	return player, nil
}

// Authenticate verifies a username and password pair. Unknown usernames and
// wrong passwords both return ErrInvalidCredentials so callers can't probe
// which usernames exist.
func (s *service) Authenticate(ctx context.Context, username, password string) (*domain.Player, error) {
	player, err := s.repo.GetPlayerByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.names.Set(player.Username, player.ID)
	return player, nil
}

// ResolvePlayerID maps a username to its player ID, going through the cache.
func (s *service) ResolvePlayerID(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if id, ok := s.names.Get(username); ok {
		return id, nil
	}

	player, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	s.names.Set(username, player.ID)
	return player.ID, nil
}

// GetInventory returns the player's current holdings.
func (s *service) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryEntry, error) {
	if _, err := s.repo.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, playerID)
}

func validateCredentials(username, password string) error {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username must be %d-%d characters",
			domain.ErrInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return fmt.Errorf("%w: username may only contain letters, digits and underscores",
				domain.ErrInvalidInput)
		}
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters",
			domain.ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
