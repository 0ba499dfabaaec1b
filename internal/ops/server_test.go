package ops_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/audit"
	"github.com/acproject/password-manager/internal/engine"
	"github.com/acproject/password-manager/internal/ops"
	"github.com/acproject/password-manager/internal/security"
)

type fakeAgent struct {
	running bool
	id      string
}

func (f *fakeAgent) IsRunning() bool  { return f.running }
func (f *fakeAgent) PluginID() string { return f.id }

func newServer(t *testing.T, agent *fakeAgent) *ops.Server {
	t.Helper()
	registry := prometheus.NewRegistry()
	trail := audit.NewTrail(nil, zap.NewNop())
	core := engine.NewKeyManagementEngine(security.NewMockHSM(), nil, trail, zap.NewNop())
	router := engine.NewCommandRouter(core, nil, engine.NewMetrics(registry), zap.NewNop())
	return ops.NewServer(router, agent, registry, zap.NewNop())
}

func TestHealth(t *testing.T) {
	s := newServer(t, &fakeAgent{running: true, id: "p1"})

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"plugin_id":"p1"`)

	s = newServer(t, &fakeAgent{running: false})
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCommandEndpoint(t *testing.T) {
	s := newServer(t, &fakeAgent{running: true, id: "p1"})

	body := `{"command":"create_key","params":{"name":"k1","user":"alice"}}`
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/commands", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	// Отказ движка — это 422 с CommandResult, а не 500
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/commands",
		strings.NewReader(`{"command":"rotate_key","params":{"key_id":"missing"}}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "key not found")

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/commands", strings.NewReader("{broken")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
