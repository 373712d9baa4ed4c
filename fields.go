package tracingweb

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// FieldFormatter renders a field set into a detail payload string for a
// mark or measure. It is invoked once per emission, never cached across
// spans.
type FieldFormatter interface {
	FormatFields(fields []Field) (string, error)
}

// FieldFormatterFunc adapts a plain function into a FieldFormatter.
type FieldFormatterFunc func(fields []Field) (string, error)

// FormatFields implements FieldFormatter.
func (f FieldFormatterFunc) FormatFields(fields []Field) (string, error) { return f(fields) }

// CompactFields returns a FieldFormatter rendering fields as a
// space-separated "key=value" list, in key order.
func CompactFields() FieldFormatter {
	return FieldFormatterFunc(func(fields []Field) (string, error) {
		if len(fields) == 0 {
			return "", nil
		}
		sorted := make([]Field, len(fields))
		copy(sorted, fields)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

		var sb strings.Builder
		for i, f := range sorted {
			if i != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(f.Key))
			sb.WriteByte('=')
			sb.WriteString(f.Value.Emit())
		}
		return sb.String(), nil
	})
}

// JSONFields returns a FieldFormatter rendering fields as a JSON object.
// Keys are emitted in sorted order; duplicate keys keep the last value.
func JSONFields() FieldFormatter {
	return FieldFormatterFunc(func(fields []Field) (string, error) {
		if len(fields) == 0 {
			return "", nil
		}
		m := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			m[string(f.Key)] = f.Value.AsInterface()
		}
		out, err := json.Marshal(m)
		if err != nil {
			return "", err
		}
		return string(out), nil
	})
}

// mergeFields appends new fields to dst, replacing values for keys that are
// already present. The accumulated set keeps one value per key, the most
// recently recorded one.
func mergeFields(dst []Field, src []Field) []Field {
	for _, f := range src {
		replaced := false
		for i := range dst {
			if dst[i].Key == f.Key {
				dst[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, f)
		}
	}
	return dst
}

// anyField converts an arbitrary value into a Field for the given key. It
// covers the value kinds the zap adapter produces through its map encoder;
// everything else is stringified.
func anyField(key string, value interface{}) Field {
	switch v := value.(type) {
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int8:
		return attribute.Int64(key, int64(v))
	case int16:
		return attribute.Int64(key, int64(v))
	case int32:
		return attribute.Int64(key, int64(v))
	case int64:
		return attribute.Int64(key, v)
	case uint:
		return attribute.Int64(key, int64(v))
	case uint8:
		return attribute.Int64(key, int64(v))
	case uint16:
		return attribute.Int64(key, int64(v))
	case uint32:
		return attribute.Int64(key, int64(v))
	case uint64:
		return attribute.Int64(key, int64(v))
	case float32:
		return attribute.Float64(key, float64(v))
	case float64:
		return attribute.Float64(key, v)
	case string:
		return attribute.String(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case error:
		return attribute.String(key, v.Error())
	case nil:
		return attribute.String(key, "<nil>")
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
