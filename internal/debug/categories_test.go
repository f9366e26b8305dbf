package debug

import (
	"testing"
)

func TestParseCategories(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		enabled map[string]bool
	}{
		{
			name:    "empty string yields empty set",
			input:   "",
			want:    []string{},
			enabled: map[string]bool{"tracestack": false},
		},
		{
			name:    "single category",
			input:   "tracestack",
			want:    []string{"tracestack"},
			enabled: map[string]bool{"tracestack": true, "typesetter": false},
		},
		{
			name:    "comma separated list",
			input:   "tracestack,typesetter",
			want:    []string{"tracestack", "typesetter"},
			enabled: map[string]bool{"tracestack": true, "typesetter": true, "fonts": false},
		},
		{
			name:    "whitespace and empty entries dropped",
			input:   " tracestack , ,typesetter,",
			want:    []string{"tracestack", "typesetter"},
			enabled: map[string]bool{"tracestack": true, "typesetter": true},
		},
		{
			name:    "names are lowered",
			input:   "TraceStack",
			want:    []string{"tracestack"},
			enabled: map[string]bool{"tracestack": true, "TRACESTACK": true},
		},
		{
			name:    "all wildcard enables everything",
			input:   "all",
			want:    []string{"all"},
			enabled: map[string]bool{"tracestack": true, "anything": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := ParseCategories(tt.input)
			got := set.List()
			if len(got) != len(tt.want) {
				t.Fatalf("List() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
			for category, want := range tt.enabled {
				if enabled := set.Enabled(category); enabled != want {
					t.Errorf("Enabled(%q) = %v, want %v", category, enabled, want)
				}
			}
		})
	}
}

func TestCategories_NilSet(t *testing.T) {
	var set Categories
	if set.Enabled("tracestack") {
		t.Error("nil set should enable nothing")
	}
	if s := set.String(); s != "" {
		t.Errorf("nil set String() = %q, want empty", s)
	}
}

func TestCategories_StringRoundTrip(t *testing.T) {
	set := ParseCategories("typesetter,tracestack")
	if got := set.String(); got != "tracestack,typesetter" {
		t.Errorf("String() = %q, want sorted %q", got, "tracestack,typesetter")
	}
	again := ParseCategories(set.String())
	if !again.Enabled("tracestack") || !again.Enabled("typesetter") {
		t.Error("round-tripped set lost categories")
	}
}
