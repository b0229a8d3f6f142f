package status

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]uint64
	}{
		{name: "empty", raw: "", want: map[string]uint64{}},
		{name: "single", raw: "2 M", want: map[string]uint64{"M": 2}},
		{name: "two segments", raw: "3 M|1 ??", want: map[string]uint64{"M": 3, "??": 1}},
		{name: "empty segments skipped", raw: "|3 M||1 ??|", want: map[string]uint64{"M": 3, "??": 1}},
		{name: "display form", raw: "1 ?? | 3 M ", want: map[string]uint64{"M": 3, "??": 1}},
		{name: "zero count", raw: "0 D", want: map[string]uint64{"D": 0}},
		{name: "only separators", raw: "| |", want: map[string]uint64{}},
		{name: "repeated code keeps last", raw: "1 M|2 M", want: map[string]uint64{"M": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		segment string
	}{
		{name: "non-numeric count", raw: "X M", segment: "X M"},
		{name: "negative count", raw: "-1 M", segment: "-1 M"},
		{name: "missing space", raw: "3M", segment: "3M"},
		{name: "missing code", raw: "2 M|4", segment: "4"},
		{name: "code with inner space", raw: "2 M M", segment: "2 M M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("Decode(%q) error = %v, want ErrParse", tt.raw, err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Segment != tt.segment {
				t.Errorf("Segment = %q, want %q", perr.Segment, tt.segment)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		states map[string]uint64
		want   string
	}{
		{name: "nil", states: nil, want: ""},
		{name: "empty", states: map[string]uint64{}, want: ""},
		{name: "single", states: map[string]uint64{"M": 2}, want: "2 M "},
		{name: "sorted by code", states: map[string]uint64{"M": 3, "??": 1}, want: "1 ?? | 3 M "},
		{name: "byte order", states: map[string]uint64{"a": 1, "D": 2, "AM": 3}, want: "3 AM | 2 D | 1 a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.states); got != tt.want {
				t.Errorf("Encode(%v) = %q, want %q", tt.states, got, tt.want)
			}
		})
	}
}

func TestEncodeDecode_PreservesValues(t *testing.T) {
	raws := []string{"", "2 M|1 ??", "10 A|0 D|7 MM|1 R", "1 ??"}

	for _, raw := range raws {
		decoded, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", raw, err)
		}

		again, err := Decode(Encode(decoded))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)) error = %v", decoded, err)
		}
		if !reflect.DeepEqual(again, decoded) {
			t.Errorf("round trip of %q = %v, want %v", raw, again, decoded)
		}
	}
}
