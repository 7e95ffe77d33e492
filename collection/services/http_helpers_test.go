package services

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	logginghelpers "github.com/Pjt727/classwatch/data/logging-helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingClientLogsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v1"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var out bytes.Buffer
	logger := logginghelpers.NewLogger(&out, nil, logginghelpers.LevelReportIO)
	client := NewReportingClient(logger, time.Second)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", `"v0"`)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	logs := out.String()
	assert.Contains(t, logs, "outgoing request")
	assert.Contains(t, logs, "response received")
	assert.Contains(t, logs, `v1`)
	assert.Equal(t, 2, strings.Count(logs, "id=1"))
}

func TestRespOrStatusErr(t *testing.T) {
	assert.NoError(t, RespOrStatusErr(&http.Response{StatusCode: http.StatusOK}, nil))

	err := RespOrStatusErr(&http.Response{StatusCode: http.StatusInternalServerError}, nil)
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.Contains(t, err.Error(), "500")

	cause := errors.New("dial tcp: refused")
	err = RespOrStatusErr(nil, cause)
	assert.ErrorIs(t, err, ErrTransportFailure)
	assert.ErrorIs(t, err, cause)
}

func TestWriteMetrics(t *testing.T) {
	SyncOutcomes.WithLabelValues("209901", SyncOutcomeFresh).Inc()
	path := filepath.Join(t.TempDir(), "classwatch.prom")
	require.NoError(t, WriteMetrics(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `classwatch_sync_total{outcome="fresh",term="209901"}`)
}
