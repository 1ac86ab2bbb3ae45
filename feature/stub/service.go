package stub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"storage-sdk/core/transport"
	"storage-sdk/feature/storage"

	"go.uber.org/zap"
)

// Fixture is a scripted response for one route.
type Fixture struct {
	// Status is the HTTP status. Zero means 200, or 400 when Errors is set.
	Status int `yaml:"status"`
	// Data is encoded as the envelope data.
	Data any `yaml:"data"`
	// Errors is returned as the envelope errors.
	Errors *transport.ErrorInfo `yaml:"errors"`
}

// Request is a call received by the stub.
type Request struct {
	Path       string
	RayID      string
	Body       json.RawMessage
	ReceivedAt time.Time
}

// Service holds the fixture table and the request log.
type Service struct {
	logger *zap.Logger

	mu       sync.Mutex
	fixtures map[string]Fixture
	requests []Request
}

// NewService creates a stub service answering every SDK route with an empty
// success envelope until fixtures are set.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger:   logger,
		fixtures: defaultFixtures(),
	}
}

func defaultFixtures() map[string]Fixture {
	fixtures := make(map[string]Fixture, len(storage.Paths))
	for _, path := range storage.Paths {
		fixtures[path] = Fixture{Data: map[string]any{}}
	}
	for _, path := range []string{storage.PathListBuckets, storage.PathSearchFiles, storage.PathBucketListFiles} {
		fixtures[path] = Fixture{Data: []any{}}
	}
	fixtures[storage.PathStats] = Fixture{Data: storage.Stats{}}
	return fixtures
}

// SetFixture replaces the response of path.
func (s *Service) SetFixture(path string, f Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixtures[path] = f
}

// Respond records the request and returns the scripted status and envelope.
func (s *Service) Respond(req Request) (int, *transport.Envelope) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	f, ok := s.fixtures[req.Path]
	s.mu.Unlock()

	if !ok {
		return http.StatusNotFound, transport.NewErrorEnvelope("not_found", fmt.Sprintf("no route %s", req.Path), http.StatusNotFound)
	}

	if f.Errors != nil {
		status := f.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, &transport.Envelope{Errors: f.Errors}
	}

	env, err := transport.NewDataEnvelope(f.Data)
	if err != nil {
		s.logger.Error("Fixture data cannot be encoded", zap.String("path", req.Path), zap.Error(err))
		return http.StatusInternalServerError, transport.NewErrorEnvelope("fixture_error", err.Error(), http.StatusInternalServerError)
	}

	status := f.Status
	if status == 0 {
		status = http.StatusOK
	}
	return status, env
}

// Requests returns a copy of the request log.
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Reset clears the request log and restores the default fixtures.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.fixtures = defaultFixtures()
}
