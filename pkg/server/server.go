package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/keyscout/keyscout/pkg/config"
	"github.com/keyscout/keyscout/pkg/index"
)

// Server handles the IPC for search and autocomplete over one index.
type Server struct {
	idx     *index.SearchIndex[string]
	cfg     config.ServerConfig
	records map[string][]string
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
}

// New creates a server using stdin/stdout for IPC.
func New(idx *index.SearchIndex[string], cfg config.ServerConfig) *Server {
	return NewWithIO(idx, cfg, os.Stdin, os.Stdout)
}

// NewWithIO creates a server over explicit streams.
func NewWithIO(idx *index.SearchIndex[string], cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		idx:     idx,
		cfg:     cfg,
		records: make(map[string][]string),
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Preload registers records that were bulk-inserted before the server
// started, so that later "remove" requests can re-derive their keywords.
func (s *Server) Preload(id string, strings []string) {
	s.records[id] = strings
}

// Start begins listening for IPC requests. It returns nil when the client
// closes its end of the stream.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		err := s.dec.Decode(&req)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "search":
		s.handleSearch(req, false)
	case "live":
		s.handleSearch(req, true)
	case "autocomplete":
		s.handleAutocomplete(req)
	case "insert":
		s.handleInsert(req)
	case "remove":
		s.handleRemove(req)
	case "dump":
		keys := emptyNotNil(s.idx.DumpKeys())
		s.send(SearchResponse{ID: req.ID, Keys: keys, Count: len(keys)})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Keywords: s.idx.Keywords()})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

// handleSearch runs a query. live forces a live-typing search regardless of
// the configured search type; this is the translation point for foreign
// query protocols.
func (s *Server) handleSearch(req Request, live bool) {
	if !s.validQuery(req) {
		return
	}
	limit := s.limit(req.Limit)

	start := time.Now()
	var keys []string
	if live {
		keys = s.idx.SearchWith(index.SearchLive, limit, req.Query)
	} else {
		keys = s.idx.Search(req.Query)
		keys = keys[:min(len(keys), limit)]
	}
	elapsed := time.Since(start)

	s.send(SearchResponse{
		ID:        req.ID,
		Keys:      emptyNotNil(keys),
		Count:     len(keys),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAutocomplete(req Request) {
	if !s.validQuery(req) {
		return
	}

	start := time.Now()
	options := s.idx.Autocomplete(req.Query)
	options = options[:min(len(options), s.limit(req.Limit))]
	elapsed := time.Since(start)

	s.send(AutocompleteResponse{
		ID:        req.ID,
		Options:   emptyNotNil(options),
		Count:     len(options),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleInsert(req Request) {
	if req.Key == "" {
		s.sendError(req.ID, "missing 'k' parameter", 400)
		return
	}
	if old, exists := s.records[req.Key]; exists {
		s.idx.Replace(req.Key, index.Strings(old), index.Strings(req.Strings))
	} else {
		s.idx.Insert(req.Key, index.Strings(req.Strings))
	}
	s.records[req.Key] = req.Strings
	s.send(StatusResponse{ID: req.ID, Status: "ok", Keywords: s.idx.Keywords()})
}

func (s *Server) handleRemove(req Request) {
	if req.Key == "" {
		s.sendError(req.ID, "missing 'k' parameter", 400)
		return
	}
	strings, exists := s.records[req.Key]
	if !exists {
		s.sendError(req.ID, fmt.Sprintf("unknown key: %s", req.Key), 404)
		return
	}
	s.idx.Remove(req.Key, index.Strings(strings))
	delete(s.records, req.Key)
	s.send(StatusResponse{ID: req.ID, Status: "ok", Keywords: s.idx.Keywords()})
}

func (s *Server) validQuery(req Request) bool {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return false
	}
	if s.cfg.MinQuery > 0 && len(req.Query) < s.cfg.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("query shorter than %d characters", s.cfg.MinQuery), 400)
		return false
	}
	if s.cfg.MaxQuery > 0 && len(req.Query) > s.cfg.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", s.cfg.MaxQuery), 400)
		return false
	}
	return true
}

func (s *Server) limit(requested int) int {
	if requested < 1 {
		return s.cfg.MaxLimit
	}
	if s.cfg.MaxLimit > 0 && requested > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return requested
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debugf("Request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// emptyNotNil keeps empty results encoded as arrays rather than nil.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
