// Package server streams isosurfaces to a downstream renderer over
// WebSocket. Each connection owns a level of detail controller: the client
// sends thresholds as JSON text messages and receives binary frames, rough
// ones right away and a full resolution frame pushed once the threshold
// settles.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/lod"
)

// DefaultWriteTimeout bounds the time spent writing a single frame.
const DefaultWriteTimeout = 10 * time.Second

// Request is a client message.
type Request struct {
	Threshold *float32 `json:"threshold"`
}

// errorMessage is sent as a text message when a request is rejected.
type errorMessage struct {
	Error string `json:"error"`
}

// Config configures a Server.
type Config struct {
	// LOD is copied for every session. OnRefine is set by the server.
	LOD lod.Config
	// Threshold is the threshold the first frame of a session is drawn at.
	// Nil draws at the median of the field values.
	Threshold *float32
	// WriteTimeout defaults to DefaultWriteTimeout.
	WriteTimeout time.Duration
	// CheckOrigin is passed to the websocket upgrader. Nil accepts
	// only same origin requests.
	CheckOrigin func(r *http.Request) bool
	Logger      logrus.FieldLogger
}

// Server is an http.Handler upgrading requests to surface streams.
type Server struct {
	cfg      Config
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	field    *isosurf.ScalarField
	lodCfg   lod.Config
	sessions map[*session]struct{}
	nextID   uint64
	closed   bool
}

// New returns a server streaming isosurfaces of field.
func New(field *isosurf.ScalarField, cfg Config) (*Server, error) {
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.LOD.Logger == nil {
		cfg.LOD.Logger = cfg.Logger
	}
	s := &Server{
		cfg: cfg,
		log: cfg.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: cfg.CheckOrigin,
		},
		sessions: make(map[*session]struct{}),
	}
	if err := s.SetField(field, cfg.LOD.Extents); err != nil {
		return nil, err
	}
	return s, nil
}

// SetField replaces the field streamed to sessions opened from now on.
// ext is the index space the field was sampled on. Open sessions keep
// drawing the field they started with.
func (s *Server) SetField(field *isosurf.ScalarField, ext isosurf.Extents) error {
	cfg := s.cfg.LOD
	cfg.Extents = ext
	// Building a controller validates the field against the configuration.
	ctrl, err := lod.New(field, cfg)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	ctrl.Close()
	s.mu.Lock()
	s.field = field
	s.lodCfg = cfg
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{
		"vertices": len(field.Vertices()),
		"extents":  ext.String(),
	}).Info("serving scalar field")
	return nil
}

// Sessions returns the number of open sessions.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close closes every open session. Requests arriving afterwards are refused.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*session, 0, len(s.sessions))
	for ss := range s.sessions {
		sessions = append(sessions, ss)
	}
	s.mu.Unlock()
	var err error
	for _, ss := range sessions {
		err = errors.Join(err, ss.conn.Close())
	}
	return err
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	closed := s.closed
	field := s.field
	cfg := s.lodCfg
	s.nextID++
	id := s.nextID
	s.mu.Unlock()
	if closed {
		http.Error(w, "server closed", http.StatusServiceUnavailable)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ss := &session{
		conn:         conn,
		writeTimeout: s.cfg.WriteTimeout,
		log: s.log.WithFields(logrus.Fields{
			"session": id,
			"remote":  r.RemoteAddr,
		}),
		latest: math32.NaN(),
	}
	cfg.OnRefine = ss.refined
	ss.ctrl, err = lod.New(field, cfg)
	if err != nil {
		// Validated by SetField.
		ss.log.WithError(err).Error("lod controller")
		return
	}
	defer ss.ctrl.Close()

	s.mu.Lock()
	s.sessions[ss] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.sessions, ss)
		s.mu.Unlock()
	}()

	initial := field.Quantile(0.5)
	if s.cfg.Threshold != nil {
		initial = *s.cfg.Threshold
	}
	ss.log.Info("session opened")
	ss.run(initial)
	ss.log.Info("session closed")
}

type session struct {
	conn         *websocket.Conn
	ctrl         *lod.Controller
	log          logrus.FieldLogger
	writeTimeout time.Duration

	wmu sync.Mutex
	// latest is the last threshold a frame was requested for. Guarded by wmu.
	latest float32
}

func (ss *session) run(initial float32) {
	if err := ss.update(initial); err != nil {
		ss.log.WithError(err).Warn("write failed")
		return
	}
	for {
		typ, msg, err := ss.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ss.log.WithError(err).Warn("read failed")
			}
			return
		}
		th, err := parseRequest(typ, msg)
		if err != nil {
			// The last surface stays on screen.
			ss.log.WithError(err).Warn("rejected request")
			err = ss.writeError(err)
		} else {
			err = ss.update(th)
		}
		if err != nil {
			ss.log.WithError(err).Warn("write failed")
			return
		}
	}
}

func parseRequest(typ int, msg []byte) (float32, error) {
	if typ != websocket.TextMessage {
		return 0, errors.New("want JSON text message")
	}
	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		return 0, fmt.Errorf("bad request: %w", err)
	}
	if req.Threshold == nil {
		return 0, errors.New("request is missing threshold")
	}
	th := *req.Threshold
	if math32.IsNaN(th) || math32.IsInf(th, 0) {
		return 0, errors.New("threshold must be finite")
	}
	return th, nil
}

func (ss *session) update(threshold float32) error {
	s, level := ss.ctrl.Update(threshold)
	ss.wmu.Lock()
	defer ss.wmu.Unlock()
	ss.latest = threshold
	return ss.writeFrame(&Frame{Level: level, Threshold: threshold, Surface: s})
}

// refined pushes the full resolution surface unless a newer threshold was
// requested meanwhile.
func (ss *session) refined(threshold float32) {
	s := ss.ctrl.Fine(threshold)
	ss.wmu.Lock()
	defer ss.wmu.Unlock()
	if threshold != ss.latest {
		return
	}
	if err := ss.writeFrame(&Frame{Level: lod.LevelFine, Threshold: threshold, Surface: s}); err != nil {
		ss.log.WithError(err).Warn("refined frame write failed")
	}
}

// writeFrame must hold wmu.
func (ss *session) writeFrame(f *Frame) error {
	b, _ := f.MarshalBinary()
	ss.conn.SetWriteDeadline(time.Now().Add(ss.writeTimeout))
	ss.log.WithFields(logrus.Fields{
		"threshold": f.Threshold,
		"level":     f.Level.String(),
		"triangles": f.Surface.NumTriangles(),
	}).Debug("frame")
	return ss.conn.WriteMessage(websocket.BinaryMessage, b)
}

func (ss *session) writeError(err error) error {
	b, _ := json.Marshal(errorMessage{Error: err.Error()})
	ss.wmu.Lock()
	defer ss.wmu.Unlock()
	ss.conn.SetWriteDeadline(time.Now().Add(ss.writeTimeout))
	return ss.conn.WriteMessage(websocket.TextMessage, b)
}
