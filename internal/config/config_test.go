package config

import (
	"os"
	"testing"

	"holdem-engine/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_SMALL_BLIND", "50")
	defer clear2()

	a := assert.New(t)
	config.loaded = false

	cfg := Instance()
	a.Equal(5000, cfg.BuyIn)
	a.Equal(50, cfg.SmallBlind, "the environment overrides the file")
	a.Equal(100, cfg.BigBlind)
	a.Equal("debug", cfg.LogLevel)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_SMALL_BLIND", "75")
	// ensure we aren't using a pointer
	cfg.SmallBlind = 1
	cfg = Instance()
	a.Equal(50, cfg.SmallBlind)

	opts := cfg.Options()
	a.Equal(5000, opts.BuyIn)
	a.Equal(50, opts.SmallBlind)
	a.Equal(100, opts.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	config.loaded = false

	a.NoError(Load())
	cfg := Instance()
	a.Equal(2000, cfg.BuyIn)
	a.Equal(10, cfg.SmallBlind)
	a.Equal(20, cfg.BigBlind)
	a.Equal("info", cfg.LogLevel)
}
