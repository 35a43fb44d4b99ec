package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, holidayURL string) string {
	t.Helper()
	body := `
trip:
  timezone: UTC
holiday:
  baseURL: ` + holidayURL + `
messages:
  beginning: {general: ["Hej"]}
  middle: {general: ["Dags"]}
  end: {general: ["Hejdå"]}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMessageCommand(t *testing.T) {
	cfg := writeConfig(t, "http://localhost")

	out, err := run(t, "--config", cfg, "message", "time_report")
	require.NoError(t, err)
	assert.Equal(t, "Hej\nDags\nHejdå\n", out)
}

func TestLastDayCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2024/06", r.URL.Path)
		_, _ = w.Write([]byte(`{"dagar":[{"datum":"2024-06-28","arbetsfri dag":"Nej"},{"datum":"2024-06-29","arbetsfri dag":"Ja"}]}`))
	}))
	defer srv.Close()

	out, err := run(t, "--config", writeConfig(t, srv.URL), "lastday", "2024-06")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-28", strings.TrimSpace(out))

	_, err = run(t, "--config", writeConfig(t, srv.URL), "lastday", "juni")
	assert.Error(t, err)
}

func TestTripCommandNeedsTwoArgs(t *testing.T) {
	_, err := run(t, "--config", writeConfig(t, "http://localhost"), "trip", "A")
	assert.Error(t, err)
}
