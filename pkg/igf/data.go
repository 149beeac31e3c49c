package igf

import "fmt"

// DataType identifies how a value is stored in an item's persistent data.
type DataType int

const (
	DataByte      DataType = iota // int8
	DataShort                     // int16
	DataInt                       // int32
	DataLong                      // int64
	DataFloat                     // float32
	DataDouble                    // float64
	DataString                    // string
	DataByteArray                 // []byte
	DataIntArray                  // []int32
	DataLongArray                 // []int64
	DataBool                      // bool
)

func (t DataType) String() string {
	switch t {
	case DataByte:
		return "byte"
	case DataShort:
		return "short"
	case DataInt:
		return "int"
	case DataLong:
		return "long"
	case DataFloat:
		return "float"
	case DataDouble:
		return "double"
	case DataString:
		return "string"
	case DataByteArray:
		return "byte_array"
	case DataIntArray:
		return "int_array"
	case DataLongArray:
		return "long_array"
	case DataBool:
		return "bool"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// Accepts reports whether v has the Go type backing t.
func (t DataType) Accepts(v any) bool {
	switch v.(type) {
	case int8:
		return t == DataByte
	case int16:
		return t == DataShort
	case int32:
		return t == DataInt
	case int64:
		return t == DataLong
	case float32:
		return t == DataFloat
	case float64:
		return t == DataDouble
	case string:
		return t == DataString
	case []byte:
		return t == DataByteArray
	case []int32:
		return t == DataIntArray
	case []int64:
		return t == DataLongArray
	case bool:
		return t == DataBool
	default:
		return false
	}
}

// Container is a typed key-value store attached to an item, supplied by the host.
type Container interface {
	Get(key Key, t DataType) (any, bool)
	Set(key Key, t DataType, value any) error
}

// Data wraps a value together with the type it is stored as.
type Data struct {
	Type  DataType
	Value any
}

// NewData validates value against t.
func NewData(t DataType, value any) (Data, error) {
	if !t.Accepts(value) {
		return Data{}, NewConfigurationError("new_data", fmt.Errorf("%w: %T is not %s", ErrDataType, value, t))
	}
	return Data{Type: t, Value: value}, nil
}

func StringData(v string) Data  { return Data{Type: DataString, Value: v} }
func IntData(v int32) Data      { return Data{Type: DataInt, Value: v} }
func LongData(v int64) Data     { return Data{Type: DataLong, Value: v} }
func DoubleData(v float64) Data { return Data{Type: DataDouble, Value: v} }
func BoolData(v bool) Data      { return Data{Type: DataBool, Value: v} }

// SetTo stores the value into container under key.
func (d Data) SetTo(container Container, key Key) error {
	return container.Set(key, d.Type, d.Value)
}

// GetData reads a value from container and wraps it, or reports false if absent.
func GetData(container Container, key Key, t DataType) (Data, bool) {
	if container == nil {
		return Data{}, false
	}
	v, ok := container.Get(key, t)
	if !ok {
		return Data{}, false
	}
	return Data{Type: t, Value: v}, true
}

// Value reads a value from container and asserts it to T.
// It reports false when the key is absent or holds a different type.
func Value[T any](container Container, key Key, t DataType) (T, bool) {
	var zero T
	d, ok := GetData(container, key, t)
	if !ok {
		return zero, false
	}
	v, ok := d.Value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// DataEntry is one key/value pair of an ordered data mapping.
type DataEntry struct {
	Key  Key
	Data Data
}

// putEntry sets key in entries, replacing an existing entry in place.
func putEntry(entries []DataEntry, key Key, d Data) []DataEntry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Data = d
			return entries
		}
	}
	return append(entries, DataEntry{Key: key, Data: d})
}

// MergeData combines ordered mappings; later mappings win on key collision
// while the position of the first occurrence is kept.
func MergeData(mappings ...[]DataEntry) []DataEntry {
	var merged []DataEntry
	for _, m := range mappings {
		for _, e := range m {
			merged = putEntry(merged, e.Key, e.Data)
		}
	}
	return merged
}
