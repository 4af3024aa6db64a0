package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "freight/internal/adapters/in/http"
	"freight/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI mounts a server with zero-value handlers. Requests that fail
// identity or role checks never reach a handler, which is exactly what these
// tests exercise.
func newTestAPI() *echo.Echo {
	e := echo.New()
	adapter.NewServer(adapter.Handlers{}).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string, identity *kernel.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if identity != nil {
		req.Header.Set(adapter.HeaderUserID, identity.ID().String())
		req.Header.Set(adapter.HeaderUserRole, identity.Role().String())
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func actorWithRole(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestServer_Health(t *testing.T) {
	rec := doRequest(newTestAPI(), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServer_RejectsMissingIdentity(t *testing.T) {
	e := newTestAPI()

	for _, target := range []string{
		"/api/v1/orders",
		"/api/v1/carriers",
		"/api/v1/routes",
		"/api/v1/locations",
	} {
		rec := doRequest(e, http.MethodPost, target, "{}", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestServer_RejectsUnknownRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(adapter.HeaderUserID, kernel.NewUUID().String())
	req.Header.Set(adapter.HeaderUserRole, "dispatcher")

	rec := httptest.NewRecorder()
	newTestAPI().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_EnforcesRoleGuards(t *testing.T) {
	e := newTestAPI()
	client := actorWithRole(t, kernel.RoleClient)
	carrier := actorWithRole(t, kernel.RoleCarrier)

	tests := []struct {
		name   string
		method string
		target string
		actor  kernel.Actor
	}{
		{"carrier cannot post orders", http.MethodPost, "/api/v1/orders", carrier},
		{"client cannot claim", http.MethodPost, "/api/v1/orders/" + kernel.NewUUID().String() + "/claim", client},
		{"client cannot register vehicle", http.MethodPost, "/api/v1/carriers", client},
		{"carrier cannot create routes", http.MethodPost, "/api/v1/routes", carrier},
		{"client cannot deactivate routes", http.MethodPost, "/api/v1/routes/" + kernel.NewUUID().String() + "/deactivate", client},
		{"carrier cannot create locations", http.MethodPost, "/api/v1/locations", carrier},
		{"carrier cannot list all orders", http.MethodGet, "/api/v1/orders", carrier},
		{"client cannot browse the board", http.MethodGet, "/api/v1/orders/available", client},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.target, "{}", &tt.actor)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestServer_RejectsMalformedIdentifiers(t *testing.T) {
	e := newTestAPI()
	client := actorWithRole(t, kernel.RoleClient)
	carrier := actorWithRole(t, kernel.RoleCarrier)

	rec := doRequest(e, http.MethodPost, "/api/v1/orders/not-a-uuid/claim", "", &carrier)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/v1/orders",
		`{"route_id":"not-a-uuid","product_description":"pallets","weight_kg":10}`, &client)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RejectsInvalidTransitionTarget(t *testing.T) {
	carrier := actorWithRole(t, kernel.RoleCarrier)
	target := "/api/v1/orders/" + kernel.NewUUID().String() + "/transition"

	rec := doRequest(newTestAPI(), http.MethodPost, target, `{"status":"teleported"}`, &carrier)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
