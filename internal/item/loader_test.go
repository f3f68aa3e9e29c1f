package item

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func validConfig() *Config {
	return &Config{
		Version: "1.0",
		Items: []Definition{
			{
				Name:        "carrot_seed",
				DisplayName: "Carrot Seed",
				BuyPrice:    intPtr(10),
				SellPrice:   5,
				Growth: &Growth{
					Crop:        "carrot",
					GrowSeconds: 60,
					StageCount:  4,
					Yield:       1,
					XPReward:    10,
				},
			},
			{Name: "carrot", DisplayName: "Carrot", SellPrice: 30},
		},
	}
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, loader.Validate(validConfig()))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("no items", func(t *testing.T) {
		err := loader.Validate(&Config{Version: "1.0"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("duplicate name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items = append(cfg.Items, Definition{Name: "carrot", DisplayName: "Carrot", SellPrice: 1})

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("empty display name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[1].DisplayName = ""

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative buy price", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].BuyPrice = intPtr(-1)

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("growth references undefined crop", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Growth.Crop = "turnip"

		err := loader.Validate(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "turnip")
	})

	t.Run("seed name must follow crop name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Name = "carrotseedling"

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero grow seconds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Growth.GrowSeconds = 0

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero stage count", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Growth.StageCount = 0

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("zero yield", func(t *testing.T) {
		cfg := validConfig()
		cfg.Items[0].Growth.Yield = 0

		err := loader.Validate(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoader_Build(t *testing.T) {
	loader := NewLoader()

	catalog, err := loader.Build(validConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	_, err = loader.Build(&Config{Version: "1.0"})
	assert.Error(t, err)
}

func TestLoader_Load_ShippedConfig(t *testing.T) {
	// The shipped catalog must always load cleanly.
	loader := NewLoader()

	cfg, err := loader.Load(filepath.Join("..", "..", "configs", ConfigFileName))
	require.NoError(t, err)
	require.NoError(t, loader.Validate(cfg))

	catalog, err := loader.Build(cfg)
	require.NoError(t, err)

	seed, err := catalog.Seed("carrot")
	require.NoError(t, err)
	require.NotNil(t, seed.Growth)
	assert.Equal(t, 60, seed.Growth.GrowSeconds)
	require.NotNil(t, seed.BuyPrice)
	assert.Equal(t, 10, *seed.BuyPrice)
}

func TestLoader_Load_Errors(t *testing.T) {
	loader := NewLoader()

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("schema rejects unknown fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		bad := `{"version":"1.0","items":[{"name":"x","display_name":"X","sell_price":1,"rarity":"epic"}]}`
		require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

		_, err := loader.Load(path)
		assert.Error(t, err)
	})
}
