package session

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"wordmask/internal/logging"
	"wordmask/internal/mask"
)

// Persistence stores the banned word list and the mapping spec.
// *store.Adapter satisfies it.
type Persistence interface {
	LoadBannedWords(ctx context.Context) []string
	SaveBannedWords(ctx context.Context, words []string) error
	LoadMapping(ctx context.Context) string
	SaveMapping(ctx context.Context, spec string) error
	Clear(ctx context.Context) error
}

// Event names the kind of change that produced a Snapshot.
type Event string

const (
	EventInput     Event = "input"
	EventWords     Event = "words"
	EventMapping   Event = "mapping"
	EventTransform Event = "transform"
	EventClear     Event = "clear"
)

// Snapshot is a copy of session state handed to subscribers.
type Snapshot struct {
	Event       Event      `json:"event,omitempty"`
	Input       string     `json:"input"`
	Output      string     `json:"output"`
	BannedWords []string   `json:"banned_words"`
	MappingSpec string     `json:"mapping"`
	Stats       mask.Stats `json:"stats"`
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Session is the in-memory state of one run.
type Session struct {
	store  Persistence
	logger *slog.Logger

	input       string
	output      string
	banned      []string
	mappingSpec string
	stats       mask.Stats

	subscribers []subscriber
	nextID      int
}

// New returns an empty session writing through store. A nil store keeps
// state in memory only.
func New(store Persistence, logger *slog.Logger) *Session {
	return &Session{
		store:  store,
		logger: logging.NewComponentLogger(logger, "session"),
		banned: []string{},
	}
}

// Load builds a session from the words and mapping persisted in store.
func Load(ctx context.Context, store Persistence, logger *slog.Logger) *Session {
	s := New(store, logger)
	if store == nil {
		return s
	}
	s.banned = mask.Dedupe(store.LoadBannedWords(ctx))
	s.mappingSpec = store.LoadMapping(ctx)
	s.logger.Debug("session loaded",
		logging.Int("banned_words", len(s.banned)),
		logging.Bool("mapping_set", s.mappingSpec != ""))
	return s
}

// Input returns the current input text.
func (s *Session) Input() string { return s.input }

// Output returns the result of the last RunTransform.
func (s *Session) Output() string { return s.output }

// MappingSpec returns the raw mapping spec.
func (s *Session) MappingSpec() string { return s.mappingSpec }

// Mapping returns the parsed mapping spec.
func (s *Session) Mapping() mask.Mapping { return mask.ParseMapping(s.mappingSpec) }

// BannedWords returns a copy of the banned words in insertion order.
func (s *Session) BannedWords() []string { return slices.Clone(s.banned) }

// Stats returns the counters from the last RunTransform.
func (s *Session) Stats() mask.Stats { return s.stats }

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Input:       s.input,
		Output:      s.output,
		BannedWords: s.BannedWords(),
		MappingSpec: s.mappingSpec,
		Stats:       s.stats,
	}
}

// SetInput replaces the input text. Input is never persisted.
func (s *Session) SetInput(text string) {
	s.input = text
	s.notify(EventInput)
}

// AddBannedWord appends the lowercase form of word and persists the list.
// Empty words and words already present in any case are ignored.
func (s *Session) AddBannedWord(ctx context.Context, word string) bool {
	if !s.appendWord(word) {
		return false
	}
	s.saveWords(ctx)
	s.notify(EventWords)
	return true
}

// AddBannedWords adds every word of a comma separated list and persists once.
// It returns how many words were new.
func (s *Session) AddBannedWords(ctx context.Context, list string) int {
	added := 0
	for _, word := range mask.ParseWordList(list) {
		if s.appendWord(word) {
			added++
		}
	}
	if added == 0 {
		return 0
	}
	s.saveWords(ctx)
	s.notify(EventWords)
	return added
}

// RemoveBannedWord drops word, compared case-insensitively, and persists the
// remaining list. It reports whether anything was removed.
func (s *Session) RemoveBannedWord(ctx context.Context, word string) bool {
	key := mask.NormalizeWord(strings.TrimSpace(word))
	if key == "" {
		return false
	}
	kept := s.banned[:0:0]
	for _, existing := range s.banned {
		if existing != key {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(s.banned) {
		return false
	}
	s.banned = kept
	s.saveWords(ctx)
	s.notify(EventWords)
	return true
}

// SetMapping replaces the mapping spec and persists it.
func (s *Session) SetMapping(ctx context.Context, spec string) {
	s.mappingSpec = spec
	if s.store != nil {
		if err := s.store.SaveMapping(ctx, spec); err != nil {
			s.warnPersist("mapping_save_failed", "mapping not saved", err)
		}
	}
	s.notify(EventMapping)
}

// RunTransform masks the input with the current words and mapping, records
// the output and returns it.
func (s *Session) RunTransform() string {
	s.output, s.stats = mask.TransformWithStats(s.input, mask.NewWordSet(s.banned), s.Mapping())
	s.logger.Debug("transform complete",
		logging.Int("tokens", s.stats.Tokens),
		logging.Int("matched", s.stats.Matched),
		logging.Int("changed", s.stats.Changed))
	s.notify(EventTransform)
	return s.output
}

// ClearAllData forgets the banned words, the mapping and the last output,
// and deletes both persisted entries. The input text is kept.
func (s *Session) ClearAllData(ctx context.Context) {
	s.banned = []string{}
	s.mappingSpec = ""
	s.output = ""
	s.stats = mask.Stats{}
	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			s.warnPersist("store_clear_failed", "stored data not cleared", err)
		}
	}
	s.notify(EventClear)
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Session) appendWord(word string) bool {
	key := mask.NormalizeWord(strings.TrimSpace(word))
	if key == "" || slices.Contains(s.banned, key) {
		return false
	}
	s.banned = append(s.banned, key)
	return true
}

func (s *Session) saveWords(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBannedWords(ctx, s.BannedWords()); err != nil {
		s.warnPersist("banned_words_save_failed", "banned words not saved", err)
	}
}

func (s *Session) warnPersist(eventType, msg string, err error) {
	logging.WarnWithContext(s.logger, msg, eventType,
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check the store settings with `wordmask status`"),
		logging.String(logging.FieldImpact, "change applies to this run only"))
}

func (s *Session) notify(event Event) {
	if len(s.subscribers) == 0 {
		return
	}
	snap := s.Snapshot()
	snap.Event = event
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(snap)
	}
}
