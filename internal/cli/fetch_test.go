package cli

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEndToEnd(t *testing.T) {
	isolate(t)

	var requests atomic.Int64
	var gotPath, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte("3,4,3,1,2\n"))
	}))
	defer srv.Close()

	t.Setenv("AOCPREP_HOST", srv.URL)
	t.Setenv("AOCPREP_SESSION", "tok123")

	out, _, err := execute(t, "fetch", "5", "2021")
	require.NoError(t, err)

	assert.Equal(t, int64(1), requests.Load(), "exactly one GET")
	assert.Equal(t, "/2021/day/5/input", gotPath)
	assert.Equal(t, "session=tok123", gotCookie)
	assert.Equal(t, "3,4,3,1,2\n", out, "input streamed verbatim")
}

func TestFetchHTTPFailure(t *testing.T) {
	isolate(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Please log in", http.StatusBadRequest)
	}))
	defer srv.Close()

	t.Setenv("AOCPREP_HOST", srv.URL)
	t.Setenv("AOCPREP_SESSION", "expired")

	out, _, err := execute(t, "fetch", "5", "2021")
	require.Error(t, err)
	assert.Equal(t, ExitRuntime, ExitCodeFor(err))
	assert.Empty(t, out)
}

func TestFetchNoCredentialMakesNoRequest(t *testing.T) {
	isolate(t)

	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	t.Setenv("AOCPREP_HOST", srv.URL)

	_, _, err := execute(t, "fetch", "5")
	require.Error(t, err)
	assert.Equal(t, ExitConfiguration, ExitCodeFor(err))
	assert.Equal(t, int64(0), requests.Load(), "no network call without a credential")
}
