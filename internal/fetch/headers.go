package fetch

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ParseHeaders parses a headers file: one HTTP header per line in
// "Name: value" form. Blank lines and lines starting with # are skipped.
func ParseHeaders(r io.Reader) (http.Header, error) {
	headers := http.Header{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: not a header line: %q", lineNo, line)
		}
		headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return headers, nil
}

// LoadHeadersFile reads and parses the headers file at path.
func LoadHeadersFile(path string) (http.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers, err := ParseHeaders(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return headers, nil
}

// ResolveHeaders builds the request headers for an input fetch. The headers
// file at headersPath is used when it exists; a session value from config or
// environment fills in the Cookie header when the file did not supply one.
// An error is returned when no cookie could be resolved at all.
func ResolveHeaders(session, headersPath string) (http.Header, error) {
	headers := http.Header{}

	if headersPath != "" {
		if _, err := os.Stat(headersPath); err == nil {
			loaded, err := LoadHeadersFile(headersPath)
			if err != nil {
				return nil, err
			}
			headers = loaded
		}
	}

	if headers.Get("Cookie") == "" && session != "" {
		headers.Set("Cookie", "session="+session)
	}

	if headers.Get("Cookie") == "" {
		return nil, fmt.Errorf("no session cookie found")
	}
	return headers, nil
}
