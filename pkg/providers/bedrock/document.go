// Document codec: generic JSON values <-> Bedrock document values
package bedrock

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	smithydocument "github.com/aws/smithy-go/document"
)

// JSONToDocument converts a generic JSON value (tool schemas, tool arguments,
// extra model parameters) into the Bedrock document representation. The
// conversion is total: numbers with no document representation (NaN,
// infinities, values outside the 64-bit range) become null, since the JSON
// grammar excludes them anyway (RFC 7159).
func JSONToDocument(value any) document.Interface {
	return document.NewLazyDocument(classifyJSON(value))
}

// DocumentToJSON converts a Bedrock document back into a generic JSON value.
// Integer document values decode as int64 and floating-point values as
// float64; non-finite floats decode as nil. Object key order is not
// preserved.
func DocumentToJSON(doc document.Interface) (any, error) {
	if doc == nil {
		return nil, nil
	}
	// the lazy-document decoder only targets concrete types, so go through
	// the document's JSON form to reach a generic value
	raw, err := doc.MarshalSmithyDocument()
	if err != nil {
		return nil, &ConversionError{Reason: "failed to decode provider document", Err: err}
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, &ConversionError{Reason: "failed to decode provider document", Err: err}
	}
	return decodeDocumentValue(value), nil
}

// classifyJSON normalizes a JSON value tree into the document number model:
// non-negative integers as uint64, negative integers as int64, everything
// else numeric as finite float64.
func classifyJSON(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		return v
	case string:
		return v
	case int:
		return classifyInt(int64(v))
	case int8:
		return classifyInt(int64(v))
	case int16:
		return classifyInt(int64(v))
	case int32:
		return classifyInt(int64(v))
	case int64:
		return classifyInt(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case float32:
		return classifyFloat(float64(v))
	case float64:
		return classifyFloat(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return classifyInt(i)
		}
		if f, err := v.Float64(); err == nil {
			return classifyFloat(f)
		}
		// outside the 64-bit range entirely
		return nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = classifyJSON(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = classifyJSON(item)
		}
		return out
	default:
		// typed values (reflected schemas, caller structs) are handed to the
		// document serializer as-is
		return v
	}
}

func classifyInt(value int64) any {
	if value < 0 {
		return value
	}
	return uint64(value)
}

func classifyFloat(value float64) any {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return value
}

func decodeDocumentValue(value any) any {
	switch v := value.(type) {
	case smithydocument.Number:
		return decodeNumber(v.Int64, v.Float64)
	case json.Number:
		return decodeNumber(v.Int64, v.Float64)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = decodeDocumentValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = decodeDocumentValue(item)
		}
		return out
	default:
		return v
	}
}

// decodeNumber keeps integers and floats apart: a value with an integral
// lexical form decodes as int64, anything else as float64.
func decodeNumber(asInt func() (int64, error), asFloat func() (float64, error)) any {
	if i, err := asInt(); err == nil {
		return i
	}
	if f, err := asFloat(); err == nil {
		return classifyFloat(f)
	}
	return nil
}
