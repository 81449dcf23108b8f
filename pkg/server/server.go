package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/catalog"
	"github.com/bastiangx/shelfserve/pkg/config"
	"github.com/bastiangx/shelfserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for product suggestions.
type Server struct {
	engine  suggest.Suggester
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a suggestion server using stdin/stdout for IPC.
func NewServer(engine suggest.Suggester, cfg *config.Config) *Server {
	return NewServerWithStreams(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithStreams lets tests swap the transport.
func NewServerWithStreams(engine suggest.Suggester, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins the synchronous request loop. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server loop")

	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Cmd {
	case "suggest":
		s.handleSuggest(request)
	case "popular":
		s.handlePopular(request)
	case "learn":
		s.handleLearn(request)
	case "history_export":
		s.send(HistoryResponse{ID: request.ID, Status: "ok", Entries: s.engine.ExportHistory()})
	case "history_import":
		s.engine.ImportHistory(request.Entries)
		s.send(HistoryResponse{ID: request.ID, Status: "ok"})
	case "history_cleanup":
		evicted := s.engine.CleanupHistory()
		s.send(HistoryResponse{ID: request.ID, Status: "ok", Evicted: evicted})
	case "product_add":
		s.handleProductAdd(request)
	case "product_find":
		s.handleProductFind(request)
	case "product_increment":
		s.engine.IncrementUsage(request.Name)
		s.send(ProductResponse{ID: request.ID, Status: "ok"})
	case "stats":
		s.send(StatsResponse{ID: request.ID, Stats: s.engine.Stats()})
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Cmd), 400)
	}
}

// handleSuggest validates the query, runs the ranking, and answers with
// rank-annotated suggestions. An empty query is a defined no-op with an
// empty result, not an error.
func (s *Server) handleSuggest(request Request) {
	query := request.Query
	if len(query) > s.cfg.Fuzzy.MaxQueryLen {
		// The matcher truncates internally too; clip early for the log.
		query = utils.TruncateRunes(query, s.cfg.Fuzzy.MaxQueryLen)
		log.Debugf("Query clipped to %d runes", s.cfg.Fuzzy.MaxQueryLen)
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Suggest.MaxSuggestions {
		limit = s.cfg.Suggest.MaxSuggestions
	}

	start := time.Now()
	suggestions := s.engine.Suggestions(query, catalog.ParseLanguage(request.Lang))
	elapsed := time.Since(start)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	s.send(SuggestResponse{
		ID:          request.ID,
		Suggestions: toWire(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handlePopular(request Request) {
	start := time.Now()
	suggestions := s.engine.Popular(catalog.ParseLanguage(request.Lang), request.Limit)
	elapsed := time.Since(start)

	s.send(SuggestResponse{
		ID:          request.ID,
		Suggestions: toWire(suggestions),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleLearn(request Request) {
	if request.Name == "" {
		s.sendError(request.ID, "Missing 'name' parameter", 400)
		return
	}
	s.engine.Learn(request.Name, catalog.ParseLanguage(request.Lang))
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleProductAdd(request Request) {
	if request.Name == "" {
		s.sendError(request.ID, "Missing 'name' parameter", 400)
		return
	}
	s.engine.AddProduct(request.Name, request.Category)
	s.send(ProductResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleProductFind(request Request) {
	product, found := s.engine.FindProduct(request.Name)
	response := ProductResponse{ID: request.ID, Status: "ok", Found: found}
	if found {
		response.Product = &product
	}
	s.send(response)
}

// toWire converts engine suggestions to the wire shape with position ranks.
func toWire(suggestions []suggest.Suggestion) []ResponseSuggestion {
	ranks := utils.CreateRankList(len(suggestions))
	out := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = ResponseSuggestion{
			Name:     sg.Name,
			Category: sg.Category,
			Score:    sg.Score,
			Reason:   string(sg.Reason),
			Rank:     ranks[i],
		}
	}
	return out
}

// send encodes a response onto the wire.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError reports a malformed or unknown request.
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
