package scan

import (
	"errors"
	"testing"
)

func TestDecodeURLForm(t *testing.T) {
	p, err := Decode("https://mysuru.example/checkin?location_id=mysore_palace&token=token-mysore-palace")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.PlaceID != "mysore_palace" {
		t.Errorf("place id = %q, want mysore_palace", p.PlaceID)
	}
	if p.Token != "token-mysore-palace" {
		t.Errorf("token = %q, want token-mysore-palace", p.Token)
	}
}

func TestDecodePipeForm(t *testing.T) {
	p, err := Decode("  mysore_zoo | token-mysore-zoo ")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.PlaceID != "mysore_zoo" || p.Token != "token-mysore-zoo" {
		t.Errorf("got %+v", p)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"url without location_id", "https://mysuru.example/checkin?token=t", ErrMissingLocationID},
		{"url without token", "https://mysuru.example/checkin?location_id=x", ErrMissingToken},
		{"bare text", "hello world", ErrUnrecognizedFormat},
		{"empty", "", ErrUnrecognizedFormat},
		{"too many pipe fields", "a|b|c", ErrUnrecognizedFormat},
		{"pipe with empty id", "|token", ErrMissingLocationID},
		{"pipe with empty token", "place|", ErrMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) err = %v, want %v", tt.raw, err, tt.want)
			}
		})
	}
}

// Decode must invert BuildURL for ids and tokens free of separator characters.
func TestDecodeInvertsBuildURL(t *testing.T) {
	cases := [][2]string{
		{"mysore_palace", "token-mysore-palace"},
		{"rail_museum", "QR-RAILMU-001"},
		{"a", "b"},
	}
	for _, c := range cases {
		raw := BuildURL("mysuru.example", c[0], c[1])
		p, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode(BuildURL(%q, %q)): %v", c[0], c[1], err)
		}
		if p.PlaceID != c[0] || p.Token != c[1] {
			t.Errorf("round trip of (%q, %q) = %+v", c[0], c[1], p)
		}
	}
}
