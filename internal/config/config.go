package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"tokenledger/internal/ledger"

	"github.com/BurntSushi/toml"
	"github.com/jellydator/validation"
	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	tokenNameEnvKey     = "TOKEN_NAME"
	tokenSymbolEnvKey   = "TOKEN_SYMBOL"
	initialSupplyEnvKey = "TOKEN_INITIAL_SUPPLY"
	ownerEnvKey         = "TOKEN_OWNER"
	seedDemoEnvKey      = "SEED_DEMO_HOLDERS"
	logLevelEnvKey      = "LOG_LEVEL"
	rateLimitEnvKey     = "RATE_LIMIT"
	configFileEnvKey    = "CONFIG_FILE"
)

var portRegex = regexp.MustCompile(`^[0-9]{1,5}$`)

type App struct {
	Port            string
	TokenName       string
	TokenSymbol     string
	InitialSupply   int64
	Owner           string
	SeedDemoHolders bool
	LogLevel        zapcore.Level
	// requests per second accepted by the HTTP server
	RateLimit       int
}

// file is the optional TOML configuration. Environment variables win over it.
type file struct {
	Port      string `toml:"port"`
	LogLevel  string `toml:"log_level"`
	RateLimit int    `toml:"rate_limit"`
	Token     struct {
		Name            string `toml:"name"`
		Symbol          string `toml:"symbol"`
		InitialSupply   int64  `toml:"initial_supply"`
		Owner           string `toml:"owner"`
		SeedDemoHolders *bool  `toml:"seed_demo_holders"`
	} `toml:"token"`
}

func defaults() App {
	return App{
		TokenName:       "InternToken",
		TokenSymbol:     "INT",
		Owner:           ledger.DefaultOwner.Hex(),
		SeedDemoHolders: true,
		LogLevel:        zapcore.InfoLevel,
		RateLimit:       50,
	}
}

func NewApp() (App, error) {
	app := defaults()

	if path, ok := os.LookupEnv(configFileEnvKey); ok {
		if err := app.loadFile(path); err != nil {
			return App{}, err
		}
	}

	if port, ok := os.LookupEnv(apiPortEnvKey); ok {
		app.Port = port
	}
	if app.Port == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	app.TokenName = lookupOr(tokenNameEnvKey, app.TokenName)
	app.TokenSymbol = lookupOr(tokenSymbolEnvKey, app.TokenSymbol)
	app.Owner = lookupOr(ownerEnvKey, app.Owner)

	var err error
	if raw, ok := os.LookupEnv(initialSupplyEnvKey); ok {
		app.InitialSupply, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", initialSupplyEnvKey, err)
		}
	}

	if raw, ok := os.LookupEnv(seedDemoEnvKey); ok {
		app.SeedDemoHolders, err = strconv.ParseBool(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", seedDemoEnvKey, err)
		}
	}

	if raw, ok := os.LookupEnv(logLevelEnvKey); ok {
		app.LogLevel, err = zapcore.ParseLevel(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
	}

	if raw, ok := os.LookupEnv(rateLimitEnvKey); ok {
		app.RateLimit, err = strconv.Atoi(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", rateLimitEnvKey, err)
		}
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a *App) loadFile(path string) error {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}

	if f.Port != "" {
		a.Port = f.Port
	}
	if f.Token.Name != "" {
		a.TokenName = f.Token.Name
	}
	if f.Token.Symbol != "" {
		a.TokenSymbol = f.Token.Symbol
	}
	if f.Token.InitialSupply != 0 {
		a.InitialSupply = f.Token.InitialSupply
	}
	if f.Token.Owner != "" {
		a.Owner = f.Token.Owner
	}
	if f.Token.SeedDemoHolders != nil {
		a.SeedDemoHolders = *f.Token.SeedDemoHolders
	}
	if f.RateLimit != 0 {
		a.RateLimit = f.RateLimit
	}
	if f.LogLevel != "" {
		level, err := zapcore.ParseLevel(f.LogLevel)
		if err != nil {
			return fmt.Errorf("parse log_level: %w", err)
		}
		a.LogLevel = level
	}
	return nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.Match(portRegex)),
		validation.Field(&a.TokenName, validation.Required),
		validation.Field(&a.TokenSymbol, validation.Required, validation.Length(1, 11)),
		validation.Field(&a.InitialSupply, validation.Min(int64(0))),
		validation.Field(&a.Owner, validation.Required, validation.By(isAddress)),
		validation.Field(&a.RateLimit, validation.Required, validation.Min(1)),
	)
}

func isAddress(value any) error {
	s, _ := value.(string)
	if !ledger.IsValidAddress(s) {
		return errors.New("must be 0x followed by 40 hex digits")
	}
	return nil
}

func lookupOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
