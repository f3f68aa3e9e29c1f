package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/willobee/FarmPatch_Go/internal/domain"
	"github.com/willobee/FarmPatch_Go/internal/validation"
)

// Sentinel errors for item loader
var (
	ErrDuplicateName = errors.New("duplicate item name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Definition `json:"items"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]
		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmptyName, ErrInvalidConfig, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}
		names[def.Name] = true
	}

	for i := range config.Items {
		if err := l.validateDefinition(&config.Items[i], names); err != nil {
			return err
		}
	}
	return nil
}

func (l *itemLoader) validateDefinition(def *Definition, names map[string]bool) error {
	if def.DisplayName == "" {
		return fmt.Errorf(ErrFmtItemEmptyDisplayName, ErrInvalidConfig, def.Name)
	}
	if def.BuyPrice != nil && *def.BuyPrice < 0 {
		return fmt.Errorf(ErrFmtItemNegativeBuyPrice, ErrInvalidConfig, def.Name)
	}
	if def.SellPrice < 0 {
		return fmt.Errorf(ErrFmtItemNegativeSellPrice, ErrInvalidConfig, def.Name)
	}

	if def.Growth == nil {
		return nil
	}

	g := def.Growth
	if g.Crop == "" {
		return fmt.Errorf(ErrFmtGrowthEmptyCrop, ErrInvalidConfig, def.Name)
	}
	if !names[g.Crop] {
		return fmt.Errorf(ErrFmtGrowthUnknownCrop, ErrInvalidConfig, def.Name, g.Crop)
	}
	// The farm resolves seeds by crop name, so the naming convention is load
	// bearing: planting crop X consumes item X_seed.
	if want := domain.SeedName(g.Crop); def.Name != want {
		return fmt.Errorf(ErrFmtGrowthBadSeedName, ErrInvalidConfig, def.Name, g.Crop, want)
	}
	if g.GrowSeconds < 1 {
		return fmt.Errorf(ErrFmtGrowthBadSeconds, ErrInvalidConfig, def.Name)
	}
	if g.StageCount < 1 {
		return fmt.Errorf(ErrFmtGrowthBadStageCount, ErrInvalidConfig, def.Name)
	}
	if g.Yield < 1 {
		return fmt.Errorf(ErrFmtGrowthBadYield, ErrInvalidConfig, def.Name)
	}
	if g.XPReward < 0 {
		return fmt.Errorf(ErrFmtGrowthNegativeXP, ErrInvalidConfig, def.Name)
	}
	return nil
}

// Build validates the config and constructs the immutable catalog from it.
func (l *itemLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	return NewCatalog(config.Items), nil
}
