package feeder

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// TargetConfig declares one feed target in the config file.
type TargetConfig struct {
	// Key is the hex form of the data key.
	Key string `koanf:"key"`
	// URL is fetched with a plain GET.
	URL string `koanf:"url"`
	// Path is the top-level document field holding the value.
	Path string `koanf:"path"`
	// Kind is "uint" or "dec".
	Kind string `koanf:"kind"`
}

// FeedTarget converts the config entry into the worker's form.
func (tc TargetConfig) FeedTarget() (types.FeedTarget, error) {
	key, err := hex.DecodeString(tc.Key)
	if err != nil {
		return types.FeedTarget{}, fmt.Errorf("target key %q is not hex: %w", tc.Key, err)
	}
	if len(key) == 0 {
		return types.FeedTarget{}, fmt.Errorf("target key cannot be empty")
	}
	kind, err := types.NumberKindFromString(tc.Kind)
	if err != nil {
		return types.FeedTarget{}, err
	}
	return types.FeedTarget{
		Key:      key,
		Source:   []byte(tc.URL),
		JsonPath: []byte(tc.Path),
		Kind:     kind,
	}, nil
}

// Config controls one feeder process.
type Config struct {
	// PollInterval is the delay between feed runs.
	PollInterval time.Duration `koanf:"poll_interval"`
	// FetchTimeout bounds every source request.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
	// Targets are the feeds this process serves.
	Targets []TargetConfig `koanf:"targets"`
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 6 * time.Second,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// LoadConfig layers defaults, an optional YAML file and ORACLE_ env vars.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config: %w", err)
		}
	}
	if err := k.Load(env.Provider("ORACLE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "ORACLE_")), "__", ".", -1)
	}), nil); err != nil {
		return Config{}, err
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return config, nil
}

// FeedTargets converts every configured target, failing on the first bad one.
func (c Config) FeedTargets() ([]types.FeedTarget, error) {
	targets := make([]types.FeedTarget, 0, len(c.Targets))
	for _, tc := range c.Targets {
		target, err := tc.FeedTarget()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}
