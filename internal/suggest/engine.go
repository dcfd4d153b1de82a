// Package suggest finds workspace files under a folder and ranks them against a query.
package suggest

import (
	"path/filepath"
	"sort"

	"github.com/NikitaCOEUR/wsfind/internal/alfred"
	"github.com/NikitaCOEUR/wsfind/internal/derrors"
	"github.com/NikitaCOEUR/wsfind/internal/fuzz"
	"github.com/NikitaCOEUR/wsfind/internal/logger"
	"github.com/NikitaCOEUR/wsfind/internal/timing"
)

const (
	// MinConfidence is the lowest partial ratio a workspace needs to be suggested
	MinConfidence = 50
	// DefaultPattern matches editor workspace descriptor files
	DefaultPattern = "*.code-workspace"
)

// Options configures an Engine
type Options struct {
	// Pattern is a glob matched against file base names. Empty means DefaultPattern.
	Pattern string
	// Exclude lists directory base names that are not descended into.
	Exclude []string
	// SkipUnreadable logs and skips directories that cannot be read
	// instead of failing the whole search.
	SkipUnreadable bool
	Logger         *logger.Logger
}

// Engine generates ranked suggestions
type Engine struct {
	pattern        string
	exclude        map[string]struct{}
	skipUnreadable bool
	log            *logger.Logger
}

// New creates an engine, rejecting malformed patterns
func New(opts Options) (*Engine, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, derrors.NewValidationError("pattern", "invalid file pattern "+pattern, err)
	}

	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		exclude[name] = struct{}{}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Engine{
		pattern:        pattern,
		exclude:        exclude,
		skipUnreadable: opts.SkipUnreadable,
		log:            log,
	}, nil
}

// Generate returns the serialized script filter document for query under root.
// root must be an existing directory.
func (e *Engine) Generate(query, root string) (string, error) {
	timer := timing.NewTimer()

	items, err := e.suggest(query, root, timer)
	if err != nil {
		return "", err
	}

	out, err := alfred.Marshal(alfred.Response{Items: items})
	if err != nil {
		return "", err
	}
	timer.Mark("encode")

	timer.Fields(e.log.Debug().Str("root", root).Int("items", len(items))).Msg("Generated suggestions")
	return out, nil
}

// Suggest returns the ranked items for query under root, or the single
// no-results placeholder when nothing reaches MinConfidence.
func (e *Engine) Suggest(query, root string) ([]alfred.Item, error) {
	return e.suggest(query, root, timing.NewTimer())
}

func (e *Engine) suggest(query, root string, timer *timing.Timer) ([]alfred.Item, error) {
	var items []alfred.Item

	scanned := 0
	err := e.walk(root, func(w workspace) {
		scanned++
		confidence := fuzz.PartialRatio(w.subtitle, query)

		e.log.Debug().
			Str("workspace", w.subtitle).
			Int("confidence", confidence).
			Msg("Scored workspace")

		if confidence < MinConfidence {
			return
		}
		items = append(items, alfred.NewMatch(w.title, w.subtitle, w.path, confidence))
	})
	if err != nil {
		return nil, err
	}
	timer.Mark("walk")

	sortItems(items)
	timer.Mark("sort")

	e.log.Debug().
		Str("query", query).
		Int("scanned", scanned).
		Int("matched", len(items)).
		Msg("Search finished")

	if len(items) == 0 {
		return []alfred.Item{alfred.NoResults(query)}, nil
	}
	return items, nil
}

// sortItems orders by confidence descending. Equal scores fall back to the
// subtitle then the arg so output does not depend on traversal order.
func sortItems(items []alfred.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, _ := items[i].Confidence()
		cj, _ := items[j].Confidence()
		if ci != cj {
			return ci > cj
		}
		if items[i].Subtitle != items[j].Subtitle {
			return items[i].Subtitle < items[j].Subtitle
		}
		return *items[i].Arg < *items[j].Arg
	})
}
