package match

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", in: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: " 2024-12-31 ", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "day first", in: "01-05-2024", wantErr: true},
		{name: "impossible day", in: "2024-02-30", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseDate(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatch_FormattedDateRoundTrip(t *testing.T) {
	date, err := ParseDate("2024-05-01")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}

	m := Match{Team1: "India", Team2: "Australia", Date: date, Venue: "Eden Gardens"}
	if got := m.FormattedDate(); got != "2024-05-01" {
		t.Fatalf("unexpected formatted date: %s", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
