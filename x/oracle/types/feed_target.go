package types

// FeedTarget bundles what a feeder needs to serve one data key.
type FeedTarget struct {
	// Key is the registered data key observations are submitted under.
	Key []byte
	// Source is the opaque fetch location, conventionally a URL.
	Source []byte
	// JsonPath is the top-level document field holding the value.
	JsonPath []byte
	// Kind is the numeric domain the extracted value converts to.
	Kind NumberKind
}
