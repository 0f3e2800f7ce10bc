package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestObserveRPC(t *testing.T) {
	m := New()
	m.ObserveRPC("/users.UserService/GetUser", codes.OK, time.Millisecond)
	m.ObserveRPC("/users.UserService/GetUser", codes.NotFound, time.Millisecond)
	m.ObserveRPC("/users.UserService/GetUser", codes.NotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/users.UserService/GetUser", "OK")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/users.UserService/GetUser", "NotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestAddRelayed(t *testing.T) {
	m := New()
	m.AddRelayed(3)
	m.AddRelayed(0)
	m.AddRelayed(2)
	assert.Equal(t, 5.0, testutil.ToFloat64(m.relayed))
}

func TestHandler(t *testing.T) {
	m := New()
	m.AddRelayed(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "usersvc_stream_items_total 1"), body)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveRPC("/users.UserService/GetUser", codes.OK, time.Millisecond)
	m.AddRelayed(1)
}
