package activity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind classifies a request payload by its top-level JSON shape.
type Kind int

const (
	// Malformed covers invalid JSON and top-level scalars; neither carries an id.
	Malformed Kind = iota
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "malformed"
	}
}

// IDField is the payload field holding the target object id.
const IDField = "Id"

// Payload is a schema-less view of a JSON request body.
type Payload struct {
	Kind     Kind
	Elements []json.RawMessage
	Fields   map[string]json.RawMessage
}

// Parse inspects text without failing: anything that is not a JSON array or
// object comes back as Malformed.
func Parse(text string) Payload {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return Payload{Kind: Malformed}
	}

	switch trimmed[0] {
	case '[':
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return Payload{Kind: Malformed}
		}
		return Payload{Kind: Array, Elements: elements}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return Payload{Kind: Malformed}
		}
		return Payload{Kind: Object, Fields: fields}
	}
	return Payload{Kind: Malformed}
}

// ObjectID returns the Id of an object payload, or the comma-joined Ids of
// the array elements that have one. Elements that are not objects, or whose
// Id is null, are skipped.
func (p Payload) ObjectID() string {
	switch p.Kind {
	case Object:
		id, _ := idOf(p.Fields)
		return id
	case Array:
		ids := make([]string, 0, len(p.Elements))
		for _, element := range p.Elements {
			var fields map[string]json.RawMessage
			if err := json.Unmarshal(element, &fields); err != nil {
				continue
			}
			if id, ok := idOf(fields); ok {
				ids = append(ids, id)
			}
		}
		return strings.Join(ids, ",")
	}
	return ""
}

// idOf renders the Id field as text: strings unquoted, numbers in their
// shortest decimal form (integral values without a fraction or exponent),
// everything else as compact JSON.
func idOf(fields map[string]json.RawMessage) (string, bool) {
	raw, ok := fields[IDField]
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	if raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9') {
		return numberText(string(raw))
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", false
	}
	return compact.String(), true
}

// numberText normalizes a JSON number literal, so 1.0 and 1e2 read as 1 and
// 100 like their integer spellings.
func numberText(literal string) (string, bool) {
	if !strings.ContainsAny(literal, ".eE") {
		if literal == "-0" {
			return "0", true
		}
		return literal, true
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return "", false
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10), true
	}
	return strconv.FormatFloat(f, 'g', -1, 64), true
}
