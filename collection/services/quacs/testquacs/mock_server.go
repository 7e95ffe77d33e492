package testquacs

import (
	"crypto/sha1"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockServer serves courses documents the way raw.githubusercontent.com does:
// strong etags and 304s for a matching If-None-Match.
type MockServer struct {
	*httptest.Server

	logger        *slog.Logger
	documents     map[string][]byte
	statuses      map[string]int
	requests      []*http.Request
	documentMutex sync.RWMutex
}

func NewMockServer(logger *slog.Logger) *MockServer {
	m := &MockServer{
		logger:    logger,
		documents: make(map[string][]byte),
		statuses:  make(map[string]int),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handleCourses))
	return m
}

// SetDocument publishes (or republishes) the document of a term code e.i. 202209
func (m *MockServer) SetDocument(termCode string, document []byte) {
	m.documentMutex.Lock()
	defer m.documentMutex.Unlock()
	m.documents[termCode] = document
}

func (m *MockServer) RemoveDocument(termCode string) {
	m.documentMutex.Lock()
	defer m.documentMutex.Unlock()
	delete(m.documents, termCode)
}

// ForceStatus makes every request for the term answer with status and no body
func (m *MockServer) ForceStatus(termCode string, status int) {
	m.documentMutex.Lock()
	defer m.documentMutex.Unlock()
	m.statuses[termCode] = status
}

func (m *MockServer) Requests() []*http.Request {
	m.documentMutex.RLock()
	defer m.documentMutex.RUnlock()
	return append([]*http.Request(nil), m.requests...)
}

func (m *MockServer) LastRequest() *http.Request {
	requests := m.Requests()
	if len(requests) == 0 {
		return nil
	}
	return requests[len(requests)-1]
}

func ETagFor(document []byte) string {
	sum := sha1.Sum(document)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// GET /{termCode}/courses.json
func (m *MockServer) handleCourses(w http.ResponseWriter, r *http.Request) {
	m.documentMutex.Lock()
	m.requests = append(m.requests, r.Clone(r.Context()))
	m.documentMutex.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if r.Method != http.MethodGet || len(parts) != 2 || parts[1] != "courses.json" {
		m.logger.Error("unexpected request", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	termCode := parts[0]

	m.documentMutex.RLock()
	status, forced := m.statuses[termCode]
	document, ok := m.documents[termCode]
	m.documentMutex.RUnlock()

	if forced {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.Error(w, "404: Not Found", http.StatusNotFound)
		return
	}

	etag := ETagFor(document)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}
