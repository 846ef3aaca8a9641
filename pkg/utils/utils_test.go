package utils

import "testing"

func TestBuildOrderID(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{number: 1, want: "ORD-1"},
		{number: 42, want: "ORD-42"},
		{number: 100500, want: "ORD-100500"},
	}
	for _, tt := range tests {
		if got := BuildOrderID(tt.number); got != tt.want {
			t.Errorf("BuildOrderID(%d) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestParseOrderNumber(t *testing.T) {
	tests := []struct {
		id      string
		want    int
		wantErr bool
	}{
		{id: "ORD-1", want: 1},
		{id: "ORD-42", want: 42},
		{id: "42", wantErr: true},
		{id: "ORD-", wantErr: true},
		{id: "ORD-abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOrderNumber(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrderNumber(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseOrderNumber(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 98.5, want: 98.5},
		{in: 1.005, want: 1.0},
		{in: 2.678, want: 2.68},
		{in: -3.456, want: -3.46},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		if got := RoundAmount(tt.in); got != tt.want {
			t.Errorf("RoundAmount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
