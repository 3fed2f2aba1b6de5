package formnum

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		year, seq int
		want      string
	}{
		{2026, 1, "TVC-2026-0001"},
		{2026, 42, "TVC-2026-0042"},
		{2025, 9999, "TVC-2025-9999"},
		{2025, 10000, "TVC-2025-10000"}, // padding never truncates
	}
	for _, tt := range tests {
		if got := Format(tt.year, tt.seq); got != tt.want {
			t.Errorf("Format(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestPrefix(t *testing.T) {
	if got := Prefix(2026); got != "TVC-2026-" {
		t.Errorf("Prefix(2026) = %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		year, seq int
		wantErr   bool
	}{
		{"TVC-2026-0001", 2026, 1, false},
		{"TVC-2026-0137", 2026, 137, false},
		{"TVC-2025-10001", 2025, 10001, false},
		{"TVC-2026-01", 0, 0, true},
		{"ABC-2026-0001", 0, 0, true},
		{"TVC-26-0001", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		year, seq, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.in, err)
			continue
		}
		if year != tt.year || seq != tt.seq {
			t.Errorf("Parse(%q) = (%d, %d), want (%d, %d)", tt.in, year, seq, tt.year, tt.seq)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for seq := 1; seq <= 3; seq++ {
		n := Format(2026, seq)
		y, s, err := Parse(n)
		if err != nil || y != 2026 || s != seq {
			t.Fatalf("round trip %q: (%d, %d, %v)", n, y, s, err)
		}
	}
}
