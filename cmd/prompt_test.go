package cmd

import (
	"bufio"
	"io"
	"strings"
	"testing"
)

func reader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

func TestPromptNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"empty picks default", "\n", 30, false},
		{"valid value", "12\n", 12, false},
		{"re-asks after junk", "abc\n12\n", 12, false},
		{"re-asks below minimum", "0\n5\n", 5, false},
		{"re-asks above maximum", "100\n60\n", 60, false},
		{"last line without newline", "12", 12, false},
		{"eof", "", 0, true},
		{"eof after junk", "abc\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promptNumber(reader(tt.input), io.Discard, "Years", 30, 1, 60)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptNumber() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("promptNumber() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptChoice(t *testing.T) {
	options := []string{"Quick Start", "Custom Scenario", "Preset Examples"}
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"first option", "1\n", 0, false},
		{"last option", "3\n", 2, false},
		{"re-asks out of range", "4\n2\n", 1, false},
		{"re-asks junk", "two\n2\n", 1, false},
		{"eof", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promptChoice(reader(tt.input), io.Discard, "Choose a mode:", options)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptChoice() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("promptChoice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		def     bool
		want    bool
		wantErr bool
	}{
		{"empty picks default yes", "\n", true, true, false},
		{"empty picks default no", "\n", false, false, false},
		{"yes", "y\n", false, true, false},
		{"YES uppercase", "YES\n", false, true, false},
		{"no", "n\n", true, false, false},
		{"re-asks junk", "maybe\ny\n", false, true, false},
		{"eof", "", true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := promptYesNo(reader(tt.input), io.Discard, "Run simulation?", tt.def)
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptYesNo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("promptYesNo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptString(t *testing.T) {
	got, err := promptString(reader("\n"), io.Discard, "Filename", "simulation_result.png")
	if err != nil || got != "simulation_result.png" {
		t.Errorf("promptString() = %q, %v, want default", got, err)
	}
	got, err = promptString(reader("chart.png\n"), io.Discard, "Filename", "simulation_result.png")
	if err != nil || got != "chart.png" {
		t.Errorf("promptString() = %q, %v, want %q", got, err, "chart.png")
	}
}
