package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/healthz", want: false},
		{path: " /HEALTHZ ", want: false},
		{path: "/readyz", want: false},
		{path: "/livez", want: false},
		{path: "/api/matches", want: true},
		{path: "/api/matches/7", want: true},
		{path: "/api/players/1/stats", want: true},
		{path: "/api/healthz", want: true},
		{path: "/docs", want: true},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
