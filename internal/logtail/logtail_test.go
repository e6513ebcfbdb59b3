package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || lines != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", lines, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Entry
	}{
		{
			name:     "empty line",
			input:    "",
			expected: Entry{},
		},
		{
			name:     "not a record",
			input:    "panic: something odd",
			expected: Entry{Message: "panic: something odd", Raw: "panic: something odd"},
		},
		{
			name:  "warn with attrs",
			input: `2026-10-16 09:12:44 WRN flow failed flow=fetchComments offer_id=42 error="dial tcp: refused"`,
			expected: Entry{
				Time:    "2026-10-16 09:12:44",
				Level:   "WARN",
				Message: "flow failed",
				Attrs:   `flow=fetchComments offer_id=42 error="dial tcp: refused"`,
				Raw:     `2026-10-16 09:12:44 WRN flow failed flow=fetchComments offer_id=42 error="dial tcp: refused"`,
			},
		},
		{
			name:  "info without attrs",
			input: "2026-10-16 09:12:40 INF client started",
			expected: Entry{
				Time:    "2026-10-16 09:12:40",
				Level:   "INFO",
				Message: "client started",
				Raw:     "2026-10-16 09:12:40 INF client started",
			},
		},
		{
			name:  "offset level",
			input: "2026-10-16 09:12:40 ERR+2 boom",
			expected: Entry{
				Time:    "2026-10-16 09:12:40",
				Level:   "ERROR",
				Message: "boom",
				Raw:     "2026-10-16 09:12:40 ERR+2 boom",
			},
		},
		{
			name:  "grouped attr",
			input: "2026-10-16 09:12:40 DBG dispatch req.event=state.SetOffers",
			expected: Entry{
				Time:    "2026-10-16 09:12:40",
				Level:   "DEBUG",
				Message: "dispatch",
				Attrs:   "req.event=state.SetOffers",
				Raw:     "2026-10-16 09:12:40 DBG dispatch req.event=state.SetOffers",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input); got != tt.expected {
				t.Errorf("Parse() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	got := ParseLines([]string{
		"2026-10-16 09:12:40 INF client started",
		"    continuation",
	})
	if len(got) != 2 || got[0].Level != "INFO" || got[1].Level != "" {
		t.Fatalf("ParseLines() = %+v", got)
	}
}
