// Package cli handles command line input for testing and debugging the
// search index in real time.
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/keyscout/keyscout/internal/logger"
	"github.com/keyscout/keyscout/pkg/index"
)

var (
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
)

// InputHandler processes queries from stdin, showing search results and
// autocomplete options for each line.
type InputHandler struct {
	idx            *index.SearchIndex[string]
	minQueryLength int
	maxQueryLength int
	limit          int
	log            *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic
// parameters.
func NewInputHandler(idx *index.SearchIndex[string], minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		idx:            idx,
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		limit:          limit,
		log:            logger.Default("cli"),
	}
}

// Start begins the interface loop. It continuously prompts for input, reads
// a line from stdin, and passes the trimmed query to handleQuery. The loop
// terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	h.log.Print("keyscout CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a query and press Enter to see results (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleQuery(query)
	}
}

// handleQuery runs one query through search and autocomplete and prints
// both result sets.
func (h *InputHandler) handleQuery(query string) {
	if len(query) < h.minQueryLength {
		h.log.Errorf("Query too short: %s", query)
		return
	}
	if len(query) > h.maxQueryLength {
		h.log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	keys := h.idx.Search(query)
	options := h.idx.Autocomplete(query)
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(keys) == 0 && len(options) == 0 {
		h.log.Warnf("No results for query: '%s'", query)
		return
	}

	if len(options) > 0 {
		h.log.Printf("%d completions:", len(options))
		for i, opt := range options {
			h.log.Printf("%2d. %s", i+1, optionStyle.Render(opt))
		}
	}

	if len(keys) > 0 {
		if h.limit > 0 && len(keys) > h.limit {
			keys = keys[:h.limit]
		}
		h.log.Printf("%d matching keys:", len(keys))
		h.log.Printf("    %s", keyStyle.Render(strings.Join(keys, ", ")))
	}
}
