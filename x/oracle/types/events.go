package types

// Event types for oracle module
const (
	EventTypeRegisterKey    = "register_key"
	EventTypeRemoveKey      = "remove_key"
	EventTypeSetSource      = "set_source"
	EventTypeAddProvider    = "add_provider"
	EventTypeRemoveProvider = "remove_provider"
	EventTypeNewData        = "new_data"
	EventTypeAggregate      = "aggregate"
)

// Event attributes
const (
	AttributeKeyDataKey  = "data_key"
	AttributeKeyProvider = "provider"
	AttributeKeyValue    = "value"
	AttributeKeyKind     = "kind"
	AttributeKeyOp       = "op"
	AttributeKeySchedule = "schedule"
	AttributeKeySource   = "source"
	AttributeKeyCount    = "observations"
)
