package types

type SubSystem uint8

const (
	Registry SubSystem = iota
	Feeds
	Aggregation
	GenesisIO
)

func (s SubSystem) String() string {
	switch s {
	case Registry:
		return "Registry"
	case Feeds:
		return "Feeds"
	case Aggregation:
		return "Aggregation"
	case GenesisIO:
		return "Genesis"
	default:
		return "Unknown"
	}
}

// OracleLogger is implemented by the keeper and mirrored by the feeder's
// logging package so both sides tag records with a subsystem.
type OracleLogger interface {
	LogInfo(msg string, subSystem SubSystem, keyvals ...interface{})
	LogError(msg string, subSystem SubSystem, keyvals ...interface{})
	LogWarn(msg string, subSystem SubSystem, keyvals ...interface{})
	LogDebug(msg string, subSystem SubSystem, keyvals ...interface{})
}
