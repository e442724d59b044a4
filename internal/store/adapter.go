package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"wordmask/internal/logging"
	"wordmask/internal/mask"
)

// Fixed keys under which the adapter persists its two values.
const (
	BannedWordsKey = "wordmask.banned_words"
	MappingKey     = "wordmask.char_mapping"
)

// Adapter persists the banned-word list and the mapping spec in a KV.
type Adapter struct {
	kv     KV
	logger *slog.Logger
}

// NewAdapter wraps kv. A nil logger discards output.
func NewAdapter(kv KV, logger *slog.Logger) *Adapter {
	return &Adapter{
		kv:     kv,
		logger: logging.NewComponentLogger(logger, "store"),
	}
}

// LoadBannedWords returns the stored words, lowercased and de-duplicated in
// stored order. Missing or unreadable data yields an empty list.
func (a *Adapter) LoadBannedWords(ctx context.Context) []string {
	raw, ok, err := a.kv.Get(ctx, BannedWordsKey)
	if err != nil {
		logging.WarnWithContext(a.logger, "banned words unavailable",
			"store_read_failed",
			logging.String("key", BannedWordsKey),
			logging.Error(err),
			logging.String(logging.FieldImpact, "starting with an empty banned word list"))
		return []string{}
	}
	if !ok || raw == "" {
		return []string{}
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		logging.WarnWithContext(a.logger, "banned words are not a JSON array",
			"store_decode_failed",
			logging.String("key", BannedWordsKey),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "save a word or run `wordmask clear` to overwrite the value"),
			logging.String(logging.FieldImpact, "starting with an empty banned word list"))
		return []string{}
	}
	return mask.Dedupe(words)
}

// SaveBannedWords overwrites the stored list with words.
func (a *Adapter) SaveBannedWords(ctx context.Context, words []string) error {
	if words == nil {
		words = []string{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode banned words: %w", err)
	}
	if err := a.kv.Set(ctx, BannedWordsKey, string(data)); err != nil {
		return fmt.Errorf("save banned words: %w", err)
	}
	a.logger.Debug("banned words saved", logging.Int("count", len(words)))
	return nil
}

// LoadMapping returns the stored mapping spec, or "" when none is stored or
// it cannot be read.
func (a *Adapter) LoadMapping(ctx context.Context) string {
	spec, ok, err := a.kv.Get(ctx, MappingKey)
	if err != nil {
		logging.WarnWithContext(a.logger, "character mapping unavailable",
			"store_read_failed",
			logging.String("key", MappingKey),
			logging.Error(err),
			logging.String(logging.FieldImpact, "starting with an empty mapping"))
		return ""
	}
	if !ok {
		return ""
	}
	return spec
}

// SaveMapping overwrites the stored mapping spec.
func (a *Adapter) SaveMapping(ctx context.Context, spec string) error {
	if err := a.kv.Set(ctx, MappingKey, spec); err != nil {
		return fmt.Errorf("save mapping: %w", err)
	}
	a.logger.Debug("mapping saved", logging.String("mapping", spec))
	return nil
}

// Clear removes both persisted entries.
func (a *Adapter) Clear(ctx context.Context) error {
	if err := a.kv.Delete(ctx, BannedWordsKey, MappingKey); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	a.logger.Debug("store cleared")
	return nil
}

// Close releases the underlying backend.
func (a *Adapter) Close() error {
	return a.kv.Close()
}
