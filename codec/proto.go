package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Proto persists a record sequence as a protobuf-encoded
// structpb.ListValue of {key, value} structs. Values must be
// representable as structpb values (strings, bools, numbers, nil, maps,
// slices); numbers decode back as float64.
type Proto struct{}

func (Proto) Name() string      { return "pb" }
func (Proto) Extension() string { return ".pb" }

func (Proto) Encode(records []Record) ([]byte, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(records))}

	for _, r := range records {
		value, err := structpb.NewValue(r.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrUnsupportedValue, r.Key, err)
		}
		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"key":   structpb.NewStringValue(r.Key),
				"value": value,
			},
		}))
	}

	data, err := proto.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode pb: %w", err)
	}
	return data, nil
}

func (Proto) Decode(data []byte) ([]Record, error) {
	var list structpb.ListValue
	if err := proto.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	records := make([]Record, 0, len(list.Values))
	for _, v := range list.Values {
		if v == nil {
			continue
		}
		if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
			continue
		}

		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("%w: record is not a struct", ErrMalformed)
		}

		rec := Record{Key: s.Fields["key"].GetStringValue()}
		if value, ok := s.Fields["value"]; ok {
			rec.Value = value.AsInterface()
		}
		records = append(records, rec)
	}
	return records, nil
}
