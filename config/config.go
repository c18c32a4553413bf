package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/szabodaniel/boardgame-collection/internal/backend"
	"github.com/szabodaniel/boardgame-collection/internal/model"
	"github.com/szabodaniel/boardgame-collection/pkg/logger"
)

// DeleteMode selects what "remove" means for a record the current user
// owns. The multi-owner semantics are unresolved product-side: "hard"
// matches the observed behavior (the record is deleted outright), "detach"
// only removes the current user's ownership while other owners remain.
type DeleteMode string

const (
	DeleteModeHard   DeleteMode = "hard"
	DeleteModeDetach DeleteMode = "detach"
)

type Config struct {
	Backend    backend.Config
	Log        logger.Log
	Language   model.Language `envconfig:"COLLECTION_LANGUAGE" default:"hu"`
	TokenFile  string         `envconfig:"COLLECTION_TOKEN_FILE"`
	DeleteMode DeleteMode     `envconfig:"COLLECTION_DELETE_MODE" default:"hard"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) { c.Log.LogLevel = level }
}

func WithLanguage(lang model.Language) Option {
	return func(c *Config) { c.Language = lang }
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.DeleteMode != DeleteModeHard && config.DeleteMode != DeleteModeDetach {
			log.Fatalf("NewConfig: invalid COLLECTION_DELETE_MODE %q", config.DeleteMode)
		}
		if config.Language != model.LanguageHU && config.Language != model.LanguageEN {
			log.Fatalf("NewConfig: invalid COLLECTION_LANGUAGE %q", config.Language)
		}
		cfg = config
		if config.Log.LogLevel == zapcore.DebugLevel {
			printConfig(cfg)
		}
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
