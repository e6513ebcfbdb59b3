package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns the whole file. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed log line.
type Entry struct {
	Time    string
	Level   string // DEBUG, INFO, WARN, ERROR or empty
	Message string
	Attrs   string
	Raw     string
}

var (
	linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (DBG|INF|WRN|ERR|DEBUG|INFO|WARN|ERROR)(?:[+-]\d+)? (.*)$`)
	attrPattern = regexp.MustCompile(`(?:^| )[A-Za-z_][\w.]*=`)
)

var levelNames = map[string]string{
	"DBG": "DEBUG",
	"INF": "INFO",
	"WRN": "WARN",
	"ERR": "ERROR",
}

// Parse splits a line written by the client logger into its parts. Lines
// that do not look like log records come back with only Message and Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line}
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		entry.Message = line
		return entry
	}
	entry.Time = m[1]
	entry.Level = m[2]
	if full, ok := levelNames[m[2]]; ok {
		entry.Level = full
	}

	rest := m[3]
	if loc := attrPattern.FindStringIndex(rest); loc != nil {
		entry.Message = strings.TrimSpace(rest[:loc[0]])
		entry.Attrs = strings.TrimSpace(rest[loc[0]:])
	} else {
		entry.Message = strings.TrimSpace(rest)
	}
	return entry
}

// ParseLines parses every line.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, len(lines))
	for i, line := range lines {
		out[i] = Parse(line)
	}
	return out
}
