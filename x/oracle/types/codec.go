package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/math"
)

// Value codecs for the module's collections. State values are hand-encoded:
// oracle values use a compact kind-prefixed binary form shared with the
// result store, the remaining records use deterministic JSON.
var (
	OracleValueCodec collcodec.ValueCodec[OracleValue] = oracleValueCodec{}
	KeyConfigCodec   collcodec.ValueCodec[KeyConfig]   = keyConfigCodec{}
	FeedHistoryCodec collcodec.ValueCodec[FeedHistory] = feedHistoryCodec{}
	ParamsCodec      collcodec.ValueCodec[Params]      = paramsCodec{}
)

type oracleValueCodec struct{}

// Encode writes the kind tag followed by the payload's own marshaling.
func (oracleValueCodec) Encode(value OracleValue) ([]byte, error) {
	var payload []byte
	var err error
	switch value.Kind() {
	case KindDec:
		payload, err = value.Dec().Marshal()
	default:
		payload, err = value.Uint().Marshal()
	}
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(value.Kind())}, payload...), nil
}

func (oracleValueCodec) Decode(b []byte) (OracleValue, error) {
	if len(b) == 0 {
		return OracleValue{}, fmt.Errorf("empty oracle value bytes")
	}
	switch NumberKind(b[0]) {
	case KindUint:
		var raw math.Uint
		if err := raw.Unmarshal(b[1:]); err != nil {
			return OracleValue{}, err
		}
		return NewUintValue(raw), nil
	case KindDec:
		var raw math.LegacyDec
		if err := raw.Unmarshal(b[1:]); err != nil {
			return OracleValue{}, err
		}
		return NewDecValue(raw), nil
	default:
		return OracleValue{}, fmt.Errorf("unknown number kind %d", b[0])
	}
}

func (oracleValueCodec) EncodeJSON(value OracleValue) ([]byte, error) {
	return json.Marshal(value)
}

func (oracleValueCodec) DecodeJSON(b []byte) (OracleValue, error) {
	var value OracleValue
	err := json.Unmarshal(b, &value)
	return value, err
}

func (oracleValueCodec) Stringify(value OracleValue) string {
	return fmt.Sprintf("%s(%s)", value.Kind(), value)
}

func (oracleValueCodec) ValueType() string {
	return "oracle.Value"
}

type keyConfigCodec struct{}

func (keyConfigCodec) Encode(value KeyConfig) ([]byte, error) {
	return json.Marshal(value)
}

func (keyConfigCodec) Decode(b []byte) (KeyConfig, error) {
	var config KeyConfig
	err := json.Unmarshal(b, &config)
	return config, err
}

func (c keyConfigCodec) EncodeJSON(value KeyConfig) ([]byte, error) {
	return c.Encode(value)
}

func (c keyConfigCodec) DecodeJSON(b []byte) (KeyConfig, error) {
	return c.Decode(b)
}

func (keyConfigCodec) Stringify(value KeyConfig) string {
	return fmt.Sprintf("%s/%s every %d blocks", value.Kind, value.Op, value.Schedule)
}

func (keyConfigCodec) ValueType() string {
	return "oracle.KeyConfig"
}

type feedHistoryCodec struct{}

func (feedHistoryCodec) Encode(value FeedHistory) ([]byte, error) {
	return json.Marshal(value)
}

func (feedHistoryCodec) Decode(b []byte) (FeedHistory, error) {
	var history FeedHistory
	err := json.Unmarshal(b, &history)
	return history, err
}

func (c feedHistoryCodec) EncodeJSON(value FeedHistory) ([]byte, error) {
	return c.Encode(value)
}

func (c feedHistoryCodec) DecodeJSON(b []byte) (FeedHistory, error) {
	return c.Decode(b)
}

func (feedHistoryCodec) Stringify(value FeedHistory) string {
	return fmt.Sprintf("feed[%s..]", value.Values[0])
}

func (feedHistoryCodec) ValueType() string {
	return "oracle.FeedHistory"
}

type paramsCodec struct{}

func (paramsCodec) Encode(value Params) ([]byte, error) {
	return json.Marshal(value)
}

func (paramsCodec) Decode(b []byte) (Params, error) {
	var params Params
	err := json.Unmarshal(b, &params)
	return params, err
}

func (c paramsCodec) EncodeJSON(value Params) ([]byte, error) {
	return c.Encode(value)
}

func (c paramsCodec) DecodeJSON(b []byte) (Params, error) {
	return c.Decode(b)
}

func (paramsCodec) Stringify(value Params) string {
	return fmt.Sprintf("%+v", value)
}

func (paramsCodec) ValueType() string {
	return "oracle.Params"
}
