package codec_test

import (
	"errors"
	"testing"

	"github.com/enginekit/containers/codec"
	"github.com/enginekit/containers/dict"
)

func sampleRecords() []codec.Record {
	return []codec.Record{
		{Key: "name", Value: "player"},
		{Key: "score", Value: 42.0},
		{Key: "active", Value: true},
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, ok := codec.Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) = false, want true", name)
			}

			records := sampleRecords()
			data, err := c.Encode(records)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := c.Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if len(decoded) != len(records) {
				t.Fatalf("len(decoded) = %d, want %d", len(decoded), len(records))
			}
			for i, want := range records {
				if decoded[i].Key != want.Key {
					t.Errorf("decoded[%d].Key = %q, want %q", i, decoded[i].Key, want.Key)
				}
			}
			if v := decoded[0].Value; v != "player" {
				t.Errorf("decoded[0].Value = %v, want player", v)
			}
			if v := decoded[2].Value; v != true {
				t.Errorf("decoded[2].Value = %v, want true", v)
			}
		})
	}
}

func TestCodecs_EmptySequence(t *testing.T) {
	for _, name := range codec.Names() {
		t.Run(name, func(t *testing.T) {
			c, _ := codec.Lookup(name)

			data, err := c.Encode(nil)
			if err != nil {
				t.Fatalf("Encode(nil) error = %v", err)
			}
			decoded, err := c.Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(decoded) != 0 {
				t.Errorf("len(decoded) = %d, want 0", len(decoded))
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := codec.Lookup("xml"); ok {
		t.Error("Lookup(xml) = true, want false")
	}
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantOK   bool
	}{
		{path: "save/world.json", wantName: "json", wantOK: true},
		{path: "save/world.yaml", wantName: "yaml", wantOK: true},
		{path: "save/world.pb", wantName: "pb", wantOK: true},
		{path: "save/world.JSON", wantName: "json", wantOK: true},
		{path: "save/world.xml", wantOK: false},
		{path: "save/world", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, ok := codec.ByExtension(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ByExtension(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && c.Name() != tt.wantName {
				t.Errorf("ByExtension(%q) = %q, want %q", tt.path, c.Name(), tt.wantName)
			}
		})
	}
}

func TestDecodeJSON_SkipsNullRecords(t *testing.T) {
	input := `[{"key":"a","value":1}, null, {"key":"b","value":2}]`

	records, err := codec.DecodeJSON[string, int]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[1].Key != "b" || records[1].Value != 2 {
		t.Errorf("records[1] = %+v, want {b 2}", records[1])
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := codec.DecodeJSON[string, int]([]byte(`{"broken":`))
	if !errors.Is(err, codec.ErrMalformed) {
		t.Errorf("DecodeJSON() error = %v, want ErrMalformed", err)
	}
}

func TestDecodeYAML_SkipsNullRecords(t *testing.T) {
	input := "- key: a\n  value: 1\n- null\n- key: b\n  value: 2\n"

	records, err := codec.DecodeYAML[string, int]([]byte(input))
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
}

func TestEncodeJSON_TypedEntries(t *testing.T) {
	entries := []dict.Entry[int, string]{
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
	}

	data, err := codec.EncodeJSON(entries)
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	decoded, err := codec.DecodeJSON[int, string](data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if len(decoded) != 2 || decoded[0].Value != "one" || decoded[1].Key != 2 {
		t.Errorf("decoded = %+v, want original entries", decoded)
	}
}

func TestProto_UnsupportedValue(t *testing.T) {
	records := []codec.Record{{Key: "ch", Value: make(chan int)}}

	_, err := codec.Proto{}.Encode(records)
	if !errors.Is(err, codec.ErrUnsupportedValue) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedValue", err)
	}
}

func TestProto_MalformedData(t *testing.T) {
	_, err := codec.Proto{}.Decode([]byte{0xff, 0xff, 0xff})
	if !errors.Is(err, codec.ErrMalformed) {
		t.Errorf("Decode() error = %v, want ErrMalformed", err)
	}
}

func TestProto_NumbersDecodeAsFloat64(t *testing.T) {
	records := []codec.Record{{Key: "n", Value: 7}}

	data, err := codec.Proto{}.Encode(records)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := codec.Proto{}.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if v, ok := decoded[0].Value.(float64); !ok || v != 7 {
		t.Errorf("decoded[0].Value = %v (%T), want float64(7)", decoded[0].Value, decoded[0].Value)
	}
}
