package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ResultStoreKey defines the shared store aggregates are published to
	ResultStoreKey = "oracle_result"

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_oracle"
)

var (
	ParamsKey = collections.NewPrefix(0)
	// ActiveKeysPrefix is the collections prefix for the set of registered data keys
	ActiveKeysPrefix = collections.NewPrefix(1)
	// ConfigsPrefix is the collections prefix for per-key aggregation configs
	ConfigsPrefix = collections.NewPrefix(2)
	// SourcesPrefix is the collections prefix for per-key fetch sources
	SourcesPrefix = collections.NewPrefix(3)
	// ProvidersPrefix is the collections prefix for the allowed provider set
	ProvidersPrefix = collections.NewPrefix(4)
	// FeedsPrefix is the collections prefix for per-provider feed buffers
	FeedsPrefix = collections.NewPrefix(5)
)
