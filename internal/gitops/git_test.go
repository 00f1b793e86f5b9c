package gitops

import "testing"

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"git version 2.39.2\n", "2.39.2", false},
		{"git version 2.39.2.windows.1\n", "2.39.2", false},
		{"git version 2.45.0", "2.45.0", false},
		{"git version 2.7", "2.7", false},
		{"not git output", "", true},
		{"", "", true},
		{"git version abc", "", true},
	}

	for _, tt := range tests {
		got, err := ParseVersionOutput(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVersionOutput(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersionOutput(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersionOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
