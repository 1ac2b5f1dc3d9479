package tables

import (
	"errors"
	"testing"

	"github.com/JonMunkholm/csvtransform/internal/core"
)

func TestNormalizeDateToNoon(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2023-05-01 07:15:42", "2023-05-01 12:00:00"},
		{"2023-05-01", "2023-05-01"},
		{"", ""},
		{"1 May 2023, 07:15", "1 12:00:00"},
		{"2023-05-01 07:15:42 +02:00", "2023-05-01 12:00:00"},
		{"2023-05-01 ", "2023-05-01 12:00:00"},
		{" 07:15", " 12:00:00"},
		{"2023-05-01 12:00:00", "2023-05-01 12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeDateToNoon(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeDateToNoon(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeDateToNoon_Idempotent(t *testing.T) {
	for _, in := range []string{"2023-05-01 07:15:42", "2023-05-01", ""} {
		once := NormalizeDateToNoon(in)
		if twice := NormalizeDateToNoon(once); twice != once {
			t.Errorf("NormalizeDateToNoon not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDateToNoon_Transform(t *testing.T) {
	if DateToNoon.Name() != "date_noon" {
		t.Errorf("Name() = %q", DateToNoon.Name())
	}

	rec, err := DateToNoon.Apply(core.Record{"Date": "2023-05-01 07:15:42", "Reps": "5"})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if rec["Date"] != "2023-05-01 12:00:00" || rec["Reps"] != "5" {
		t.Errorf("Apply() = %v", rec)
	}

	_, err = DateToNoon.Apply(core.Record{"Reps": "5"})
	if !errors.Is(err, core.ErrMissingColumn) {
		t.Errorf("Apply() without Date: error = %v, want ErrMissingColumn", err)
	}
}
