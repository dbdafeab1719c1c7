package calculations

import (
	"bytes"
	"encoding/json"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// ExtractField returns the literal of the first top-level member of doc whose
// name equals path. The whole document must be well-formed JSON with an
// object root, and the member's value must be a JSON number. Nested objects
// are not searched.
func ExtractField(doc, path []byte) (string, bool) {
	if !json.Valid(doc) {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return "", false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", false
	}

	want := string(path)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		key, ok := keyTok.(string)
		if !ok {
			return "", false
		}
		valTok, err := dec.Token()
		if err != nil {
			return "", false
		}
		if key == want {
			num, ok := valTok.(json.Number)
			if !ok {
				return "", false
			}
			return num.String(), true
		}
		if err := skipValue(dec, valTok); err != nil {
			return "", false
		}
	}
	return "", false
}

// skipValue consumes the remainder of a compound value whose opening
// delimiter was already read.
func skipValue(dec *json.Decoder, tok json.Token) error {
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// ParseFeedValue runs the full extraction pipeline: find the field in doc,
// parse its literal and convert it into the kind the key expects.
func ParseFeedValue(doc, path []byte, kind types.NumberKind) (types.OracleValue, bool) {
	literal, ok := ExtractField(doc, path)
	if !ok {
		return types.OracleValue{}, false
	}
	parsed, ok := ParseDecimal(literal)
	if !ok {
		return types.OracleValue{}, false
	}
	return FromDecimal(parsed, kind)
}
