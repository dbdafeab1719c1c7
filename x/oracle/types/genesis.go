package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisteredKey pairs a data key with its aggregation config.
type RegisteredKey struct {
	Key    []byte    `json:"key"`
	Config KeyConfig `json:"config"`
}

// SourceRecord pairs a data key with its opaque fetch source. Sources may
// outlive their key registration, so records are not required to reference a
// registered key.
type SourceRecord struct {
	Key    []byte `json:"key"`
	Source []byte `json:"source"`
}

// FeedRecord is one provider's buffer exported at genesis.
type FeedRecord struct {
	Key      []byte      `json:"key"`
	Provider string      `json:"provider"`
	History  FeedHistory `json:"history"`
}

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	Params    Params          `json:"params"`
	Keys      []RegisteredKey `json:"keys"`
	Sources   []SourceRecord  `json:"sources"`
	Providers []string        `json:"providers"`
	Feeds     []FeedRecord    `json:"feeds"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	configs := make(map[string]KeyConfig)
	for _, record := range gs.Keys {
		if len(record.Key) == 0 {
			return fmt.Errorf("registered key cannot be empty")
		}
		if _, ok := configs[string(record.Key)]; ok {
			return fmt.Errorf("duplicate data key %X", record.Key)
		}
		if err := record.Config.Validate(); err != nil {
			return fmt.Errorf("config for key %X: %w", record.Key, err)
		}
		configs[string(record.Key)] = record.Config
	}

	seenSources := make(map[string]bool)
	for _, record := range gs.Sources {
		if len(record.Key) == 0 {
			return fmt.Errorf("source record key cannot be empty")
		}
		if seenSources[string(record.Key)] {
			return fmt.Errorf("duplicate source for key %X", record.Key)
		}
		seenSources[string(record.Key)] = true
	}

	seenProviders := make(map[string]bool)
	for _, provider := range gs.Providers {
		if _, err := sdk.AccAddressFromBech32(provider); err != nil {
			return fmt.Errorf("invalid provider address %s: %w", provider, err)
		}
		if seenProviders[provider] {
			return fmt.Errorf("duplicate provider %s", provider)
		}
		seenProviders[provider] = true
	}

	seenFeeds := make(map[string]bool)
	for _, record := range gs.Feeds {
		config, ok := configs[string(record.Key)]
		if !ok {
			return fmt.Errorf("feed for unregistered key %X", record.Key)
		}
		if _, err := sdk.AccAddressFromBech32(record.Provider); err != nil {
			return fmt.Errorf("invalid feed provider %s: %w", record.Provider, err)
		}
		pair := string(record.Key) + "/" + record.Provider
		if seenFeeds[pair] {
			return fmt.Errorf("duplicate feed for key %X provider %s", record.Key, record.Provider)
		}
		seenFeeds[pair] = true
		for _, value := range record.History.Values {
			if value.Kind() != config.Kind {
				return fmt.Errorf("feed for key %X holds %s values, config expects %s",
					record.Key, value.Kind(), config.Kind)
			}
		}
	}

	return gs.Params.Validate()
}
