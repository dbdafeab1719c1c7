package types

// FeedHistorySize is the fixed depth of one provider's feed buffer.
const FeedHistorySize = 8

// FeedHistory is the bounded per-provider observation buffer. Values[0] is
// the newest observation.
type FeedHistory struct {
	Values [FeedHistorySize]OracleValue `json:"values"`
}

// NewFeedHistory starts a buffer with value as the only observation. The
// remaining slots hold the kind's zero, which is indistinguishable from a
// genuine zero observation and neutral under summation.
func NewFeedHistory(value OracleValue) FeedHistory {
	var h FeedHistory
	for i := range h.Values {
		h.Values[i] = ZeroValue(value.Kind())
	}
	h.Values[0] = value
	return h
}

// Push inserts value as the newest observation, shifting the rest one slot
// toward the tail and dropping the oldest.
func (h *FeedHistory) Push(value OracleValue) {
	copy(h.Values[1:], h.Values[:FeedHistorySize-1])
	h.Values[0] = value
}
