// Package feed publishes the track overview over server-sent events so other
// screens can mirror the marker positions.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/rs/zerolog"
)

// Stream names.
const (
	MarkersStream = "markers"
	PhaseStream   = "phase"
)

// MarkerState is one marker in a snapshot.
type MarkerState struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Curve    string  `json:"curve"`
	Fraction float64 `json:"fraction"`
}

// Snapshot is published on the markers stream.
type Snapshot struct {
	Run     string        `json:"run"`
	Phase   string        `json:"phase"`
	At      time.Time     `json:"at"`
	Markers []MarkerState `json:"markers"`
}

// PhaseChange is published on the phase stream.
type PhaseChange struct {
	Run   string    `json:"run"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	Name  string    `json:"name"`
	Count uint64    `json:"count"`
	At    time.Time `json:"at"`
}

// Server fans snapshots out to SSE subscribers. Publishing never blocks: a
// subscriber that cannot keep up misses events.
type Server struct {
	run      string
	interval time.Duration
	log      zerolog.Logger
	sse      *sse.Server
	publish  func(stream string, data []byte)

	mu   sync.Mutex
	last time.Time
}

// New creates a Server tagging every event with run. Marker snapshots are
// rate-limited to one per interval.
func New(run string, interval time.Duration, log zerolog.Logger) *Server {
	s := &Server{
		run:      run,
		interval: interval,
		log:      log,
		sse:      sse.New(),
	}
	s.sse.AutoReplay = false
	s.sse.CreateStream(MarkersStream)
	s.sse.CreateStream(PhaseStream)
	s.publish = func(stream string, data []byte) {
		s.sse.TryPublish(stream, &sse.Event{Data: data})
	}
	return s
}

// PublishMarkers sends a snapshot unless one went out less than an interval
// before at.
func (s *Server) PublishMarkers(at time.Time, phase string, markers []MarkerState) {
	s.mu.Lock()
	if !s.last.IsZero() && at.Sub(s.last) < s.interval {
		s.mu.Unlock()
		return
	}
	s.last = at
	s.mu.Unlock()

	s.send(MarkersStream, Snapshot{Run: s.run, Phase: phase, At: at, Markers: markers})
}

// PublishPhase sends a phase change. Phase changes are never rate-limited.
func (s *Server) PublishPhase(c PhaseChange) {
	c.Run = s.run
	s.send(PhaseStream, c)
}

func (s *Server) send(stream string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("stream", stream).Msg("feed: marshal json")
		return
	}
	s.publish(stream, data)
}

// ServeHTTP serves the SSE endpoint; clients select a stream with ?stream=.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.sse.ServeHTTP(w, r)
}

// ListenAndServe serves /events on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/events", s)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Msg("feed listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// SSE handlers hold their connections open, so close the streams first.
		s.sse.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
