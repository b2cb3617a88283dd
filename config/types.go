package config

import (
	"errors"

	"github.com/katalvlaran/lvperiodic/periodicity"
)

// ErrInvalidConfig wraps decoding and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MemoryCache as CacheDir keeps the result cache in memory.
const MemoryCache = ":memory:"

// Defaults applied to empty fields.
const (
	DefaultAlgorithm = string(periodicity.DefaultAlgorithm)
	DefaultLogLevel  = "info"
)

// Config is one run of the lvperiodic command.
type Config struct {
	Algorithm    string        `yaml:"algorithm" json:"algorithm" validate:"oneof=all_simple_paths cycle_basis"`
	LogLevel     string        `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	CacheDir     string        `yaml:"cache_dir" json:"cache_dir"`
	Center       bool          `yaml:"center" json:"center"`
	Root         string        `yaml:"root" json:"root"`
	AnyRoot      bool          `yaml:"any_root" json:"any_root"`
	Supergraph   []int         `yaml:"supergraph" json:"supergraph" validate:"omitempty,dive,gte=1"`
	AllowOffAxis bool          `yaml:"allow_off_axis" json:"allow_off_axis"`
	Component    *ComponentDoc `yaml:"component" json:"component" validate:"required_without=Net,excluded_with=Net"`
	Net          string        `yaml:"net" json:"net" validate:"required_without=Component"`
}

// ComponentDoc describes a component as environments and links.
type ComponentDoc struct {
	Environments []EnvironmentDoc       `yaml:"environments" json:"environments" validate:"required,min=1,dive"`
	Links        []LinkDoc              `yaml:"links" json:"links" validate:"dive"`
	LinkData     map[string]interface{} `yaml:"link_data" json:"link_data"`
}

// EnvironmentDoc is one environment of a ComponentDoc.
type EnvironmentDoc struct {
	ID    string                 `yaml:"id" json:"id" validate:"required"`
	ISite int                    `yaml:"isite" json:"isite" validate:"gte=0"`
	Data  map[string]interface{} `yaml:"data" json:"data"`
}

// LinkDoc is one link of a ComponentDoc. Delta is omitted for bonds inside
// the cell; Start and End override the endpoint isites.
type LinkDoc struct {
	From  string                 `yaml:"from" json:"from" validate:"required"`
	To    string                 `yaml:"to" json:"to" validate:"required"`
	Delta []int                  `yaml:"delta" json:"delta" validate:"omitempty,len=3"`
	Start *int                   `yaml:"start" json:"start" validate:"omitempty,gte=0"`
	End   *int                   `yaml:"end" json:"end" validate:"omitempty,gte=0"`
	Data  map[string]interface{} `yaml:"data" json:"data"`
}
