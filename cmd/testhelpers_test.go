package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"tushare/internal/catalog"
	"tushare/internal/config"

	"github.com/jedib0t/go-pretty/v6/text"
)

const testCatalog = `{
  "daily": {
    "name": "daily",
    "description": "Daily bars for A-share stocks. Limit: 6000 rows per call.",
    "category": "stock",
    "docId": 27,
    "parameters": [
      {"name": "ts_code", "type": "str", "required": true, "description": "Stock code"},
      {"name": "start_date", "type": "str", "required": false, "description": "Start date"}
    ],
    "outputFields": [
      {"name": "close", "type": "float", "defaultShow": true, "description": "Close"},
      {"name": "amount", "type": "float", "defaultShow": false, "description": "Turnover"}
    ],
    "requiresPoints": 120
  },
  "index_basic": {
    "name": "index_basic",
    "description": "Basic information about market indices.",
    "category": "index",
    "parameters": [{"name": "market", "type": "str", "required": false, "description": "Market"}],
    "outputFields": []
  }
}`

// testApp returns an app writing to buffers and reading a small catalog.
func testApp(t *testing.T) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	text.DisableColors()
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.catalog = catalog.NewLoader([]byte(testCatalog))
	a.spinner = false
	return a, &out, &errOut
}

// isolateConfig keeps tests away from the real token file and settings.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfigPath, filepath.Join(dir, "token.txt"))
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvAPIURL, "")
	return dir
}

// fakeAPI serves a fixed reply and records request bodies.
type fakeAPI struct {
	mu     sync.Mutex
	bodies []string
	reply  string
	status int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.bodies = append(f.bodies, string(body))
	status := f.status
	f.mu.Unlock()
	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = io.WriteString(w, f.reply)
}

// startAPI points the client at a fake server for the duration of the test.
func startAPI(t *testing.T, reply string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{reply: reply}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	t.Setenv(config.EnvAPIURL, srv.URL)
	return api
}

func runApp(t *testing.T, a *app, argv ...string) error {
	t.Helper()
	return a.run(context.Background(), argv)
}
