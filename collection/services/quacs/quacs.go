package quacs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Pjt727/classwatch/collection/services"
	"github.com/Pjt727/classwatch/data"
	"github.com/Pjt727/classwatch/data/cache"
)

const DefaultSourceURL = "https://raw.githubusercontent.com/quacs/quacs-data/master/semester_data"

// returned by callers that need a document for a term the remote does not have
var ErrTermNotFound = errors.New("term not found")

type Availability int

const (
	DataUnavailable Availability = iota
	DataAvailable
)

func (a Availability) String() string {
	if a == DataAvailable {
		return "available"
	}
	return "unavailable"
}

// Synchronizer keeps the cached courses document of a term in line with the
// published one using etag conditional requests.
type Synchronizer struct {
	sourceURL string
	client    *http.Client
	store     cache.Store
	logger    *slog.Logger
}

type Option func(*Synchronizer)

func WithSourceURL(sourceURL string) Option {
	return func(s *Synchronizer) {
		s.sourceURL = strings.TrimRight(sourceURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Synchronizer) {
		s.client = client
	}
}

func NewSynchronizer(logger *slog.Logger, store cache.Store, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		sourceURL: DefaultSourceURL,
		client:    http.DefaultClient,
		store:     store,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synchronizer) TermURL(term data.Term) string {
	return fmt.Sprintf("%s/%s/courses.json", s.sourceURL, term.Code())
}

// Sync brings the cached record for term up to date with the remote. The cache
// is read at most once and written at most once.
//
//	200 the new document and etag are stored
//	304 the cached document is current
//	412 treated like 304, the cache is left alone
//	404 the term does not exist and its record is removed
//
// Anything else is an ErrTransportFailure and the cache is untouched.
func (s *Synchronizer) Sync(ctx context.Context, term data.Term) (Availability, error) {
	logger := s.logger.With(slog.String("term", term.Code()))

	record, err := s.store.Get(ctx, term)
	if err != nil && !cache.IsMiss(err) {
		logger.Error("Error reading cache", "error", err)
		return DataUnavailable, err
	}
	hasRecord := err == nil

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.TermURL(term), nil)
	if err != nil {
		logger.Error("Error creating courses request", "error", err)
		return DataUnavailable, errors.Join(services.ErrIncorrectAssumption, err)
	}
	// a validator without its document would only get us a 304 for bytes we lost
	if record.Validator != "" && record.HasDocument() {
		req.Header.Set("If-None-Match", record.Validator)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("Error getting courses response", "error", err)
		s.recordOutcome(term, services.SyncOutcomeFailure)
		return DataUnavailable, services.RespOrStatusErr(resp, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			logger.Error("Error reading courses body", "error", err)
			s.recordOutcome(term, services.SyncOutcomeFailure)
			return DataUnavailable, services.RespOrStatusErr(resp, err)
		}
		fresh := cache.Record{Validator: resp.Header.Get("ETag"), Document: body}
		if err := s.store.Put(ctx, term, fresh); err != nil {
			logger.Error("Error writing cache", "error", err)
			return DataUnavailable, err
		}
		services.CachedDocumentBytes.WithLabelValues(term.Code()).Set(float64(len(body)))
		s.recordOutcome(term, services.SyncOutcomeFresh)
		logger.Info("Stored new courses document", "bytes", len(body), "etag", fresh.Validator)
		return DataAvailable, nil

	case http.StatusNotModified:
		s.recordOutcome(term, services.SyncOutcomeNotModified)
		logger.Info("Cached courses document is current", "etag", record.Validator)
		s.warnIfEmpty(logger, record)
		return DataAvailable, nil

	case http.StatusPreconditionFailed:
		s.recordOutcome(term, services.SyncOutcomePreconditionFailed)
		logger.Warn("Precondition failed, keeping cached courses document", "etag", record.Validator)
		s.warnIfEmpty(logger, record)
		return DataAvailable, nil

	case http.StatusNotFound:
		s.recordOutcome(term, services.SyncOutcomeNotFound)
		logger.Info("Term is not published", "url", req.URL.String())
		if hasRecord {
			if err := s.store.Delete(ctx, term); err != nil {
				logger.Error("Error removing cache", "error", err)
				return DataUnavailable, err
			}
			services.CachedDocumentBytes.DeleteLabelValues(term.Code())
		}
		return DataUnavailable, nil
	}

	s.recordOutcome(term, services.SyncOutcomeFailure)
	err = services.RespOrStatusErr(resp, nil)
	if err == nil {
		err = fmt.Errorf("%w unexpected status %s", services.ErrTransportFailure, resp.Status)
	}
	logger.Error("Unexpected courses response", "status", resp.StatusCode)
	return DataUnavailable, err
}

// Document returns the cached courses document for term
func (s *Synchronizer) Document(ctx context.Context, term data.Term) ([]byte, error) {
	record, err := s.store.Get(ctx, term)
	if err != nil {
		return nil, err
	}
	if !record.HasDocument() {
		return nil, cache.ErrCacheMiss
	}
	return record.Document, nil
}

func (s *Synchronizer) recordOutcome(term data.Term, outcome string) {
	services.SyncOutcomes.WithLabelValues(term.Code(), outcome).Inc()
}

func (s *Synchronizer) warnIfEmpty(logger *slog.Logger, record cache.Record) {
	if !record.HasDocument() {
		logger.Warn("Remote reported no change but there is no cached document")
	}
}
