package fetch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    map[string]string
		wantErr bool
	}{
		"single cookie header": {
			input: "Cookie: session=abc123\n",
			want:  map[string]string{"Cookie": "session=abc123"},
		},
		"multiple headers": {
			input: "Cookie: session=abc123\nUser-Agent: curl/8.0\n",
			want: map[string]string{
				"Cookie":     "session=abc123",
				"User-Agent": "curl/8.0",
			},
		},
		"blank lines and comments skipped": {
			input: "# my auth\n\nCookie: session=abc123\n\n",
			want:  map[string]string{"Cookie": "session=abc123"},
		},
		"whitespace trimmed": {
			input: "  Cookie :  session=abc123  \n",
			want:  map[string]string{"Cookie": "session=abc123"},
		},
		"value may contain colons": {
			input: "Referer: https://example.com/page\n",
			want:  map[string]string{"Referer": "https://example.com/page"},
		},
		"garbage line rejected": {
			input:   "this is not a header\n",
			wantErr: true,
		},
		"empty input yields empty headers": {
			input: "",
			want:  map[string]string{},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHeaders(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for header, value := range tt.want {
				assert.Equal(t, value, got.Get(header))
			}
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestResolveHeaders(t *testing.T) {
	t.Parallel()

	writeHeaders := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "aocprep.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("headers file supplies cookie", func(t *testing.T) {
		t.Parallel()
		path := writeHeaders(t, "Cookie: session=fromfile\n")
		headers, err := ResolveHeaders("", path)
		require.NoError(t, err)
		assert.Equal(t, "session=fromfile", headers.Get("Cookie"))
	})

	t.Run("headers file wins over session value", func(t *testing.T) {
		t.Parallel()
		path := writeHeaders(t, "Cookie: session=fromfile\n")
		headers, err := ResolveHeaders("fromenv", path)
		require.NoError(t, err)
		assert.Equal(t, "session=fromfile", headers.Get("Cookie"))
	})

	t.Run("session fills in missing cookie", func(t *testing.T) {
		t.Parallel()
		path := writeHeaders(t, "User-Agent: custom\n")
		headers, err := ResolveHeaders("fromenv", path)
		require.NoError(t, err)
		assert.Equal(t, "session=fromenv", headers.Get("Cookie"))
		assert.Equal(t, "custom", headers.Get("User-Agent"))
	})

	t.Run("session alone suffices", func(t *testing.T) {
		t.Parallel()
		headers, err := ResolveHeaders("tok", filepath.Join(t.TempDir(), "missing.txt"))
		require.NoError(t, err)
		assert.Equal(t, "session=tok", headers.Get("Cookie"))
	})

	t.Run("no credential anywhere fails", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveHeaders("", filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session cookie")
	})

	t.Run("malformed headers file fails", func(t *testing.T) {
		t.Parallel()
		path := writeHeaders(t, "not a header\n")
		_, err := ResolveHeaders("tok", path)
		require.Error(t, err)
	})
}
