// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/shelfserve/internal/utils"
	"github.com/bastiangx/shelfserve/pkg/catalog"
	"github.com/bastiangx/shelfserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing ranked
// suggestions. Besides plain queries it understands a few colon commands
// for exercising the learning and maintenance paths.
type InputHandler struct {
	engine       suggest.Suggester
	lang         catalog.Language
	maxQueryLen  int
	suggestLimit int
	noFilter     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine suggest.Suggester, lang catalog.Language, maxQueryLen, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		lang:         lang,
		maxQueryLen:  maxQueryLen,
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("ShelfServe CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter to see suggestions (Ctrl+C to exit)")
	log.Print("commands: :learn <name>  :add <name> <category>  :popular  :cleanup  :stats")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			h.handleCommand(line)
			continue
		}
		h.handleQuery(line)
	}
}

// handleCommand runs the colon commands that exercise the write and
// maintenance paths.
func (h *InputHandler) handleCommand(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":learn":
		if len(fields) < 2 {
			log.Error("usage: :learn <name>")
			return
		}
		name := strings.Join(fields[1:], " ")
		h.engine.Learn(name, h.lang)
		log.Printf("learned '%s'", name)
	case ":add":
		if len(fields) < 3 {
			log.Error("usage: :add <name> <category>")
			return
		}
		category := fields[len(fields)-1]
		name := strings.Join(fields[1:len(fields)-1], " ")
		h.engine.AddProduct(name, category)
		log.Printf("added '%s' (%s)", name, category)
	case ":popular":
		h.printSuggestions(h.engine.Popular(h.lang, h.suggestLimit))
	case ":cleanup":
		evicted := h.engine.CleanupHistory()
		log.Printf("cleanup evicted %d entries", evicted)
	case ":stats":
		for k, v := range h.engine.Stats() {
			log.Printf("%-16s %d", k, v)
		}
	default:
		log.Errorf("unknown command: %s", fields[0])
	}
}

// handleQuery processes a single query to generate suggestions.
// It validates the input, then asks the engine for suggestions.
// Results are formatted and printed to the log.
func (h *InputHandler) handleQuery(query string) {
	if len(query) > h.maxQueryLen {
		log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(query) {
			log.Infof("No results found for query: '%s'", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	suggestions := h.engine.Suggestions(query, h.lang)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for query: '%s'", query)
		return
	}

	log.Printf("Found %d suggestions for query '%s':", len(suggestions), query)
	h.printSuggestions(suggestions)
}

func (h *InputHandler) printSuggestions(suggestions []suggest.Suggestion) {
	for i, s := range suggestions {
		clName := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Name)
		log.Printf("%2d. %-40s (%-9s score: %5.2f  %s)", i+1, clName, s.Category, s.Score, s.Reason)
	}
}
