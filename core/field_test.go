package core

import (
	"errors"
	"testing"
	"time"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", F("k", "hello"), "hello"},
		{"Int field", F("k", 42), "42"},
		{"Int64 field", F("k", int64(1234567890)), "1234567890"},
		{"Uint64 field", F("k", uint64(7)), "7"},
		{"Bool field (true)", F("k", true), "true"},
		{"Bool field (false)", F("k", false), "false"},
		{"Float64 field", F("k", 3.14), "3.14"},
		{"Duration field", F("k", 5*time.Second), "5s"},
		{"Time field", F("k", time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)), "2026-02-18T13:00:00Z"},
		{"Error field", F("k", errors.New("an error occurred")), "an error occurred"},
		{"Stringer field", F("k", stringer{}), "stringer"},
		{"Nil field", F("k", nil), "<nil>"},
		{"Slice field", F("k", []int{1, 2}), "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
