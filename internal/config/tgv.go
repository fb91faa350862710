package config

import (
	"sync"
	"time"

	"github.com/tgv/tgv/internal/config/data"
)

// Default values
const (
	DefaultDelimiter   = "\t"
	DefaultLongPress   = 500 * time.Millisecond
	DefaultLongPressMs = 500
)

// Tgv represents the tgv global configuration.
type Tgv struct {
	Delimiter   string      `yaml:"delimiter"`
	Watch       bool        `yaml:"watch"`
	LongPressMs int         `yaml:"longPressMs"`
	DefaultSort string      `yaml:"defaultSort"`
	UI          data.UI     `yaml:"ui"`
	Logger      data.Logger `yaml:"logger"`

	mx sync.RWMutex
}

// NewTgv creates a Tgv with default settings.
func NewTgv() *Tgv {
	return &Tgv{
		Delimiter:   DefaultDelimiter,
		LongPressMs: DefaultLongPressMs,
		UI: data.UI{
			EnableMouse: true,
		},
		Logger: data.Logger{
			Level: DefaultLogLevel,
		},
	}
}

// Validate ensures Tgv has valid settings.
func (t *Tgv) Validate() {
	t.mx.Lock()
	defer t.mx.Unlock()

	if t.Delimiter == "" {
		t.Delimiter = DefaultDelimiter
	}
	if t.LongPressMs <= 0 {
		t.LongPressMs = DefaultLongPressMs
	}
	if t.Logger.Level == "" {
		t.Logger.Level = DefaultLogLevel
	}
}

// Override applies CLI flag overrides to the configuration.
func (t *Tgv) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	t.mx.Lock()
	defer t.mx.Unlock()

	if IsStringSet(flags.Delimiter) {
		t.Delimiter = *flags.Delimiter
	}
	if IsBoolSet(flags.Watch) {
		t.Watch = true
	}
	if flags.LongPressMs != nil && *flags.LongPressMs > 0 {
		t.LongPressMs = *flags.LongPressMs
	}
	if IsStringSet(flags.SortColumn) {
		t.DefaultSort = *flags.SortColumn
	}
	if IsStringSet(flags.LogLevel) {
		t.Logger.Level = *flags.LogLevel
	}
	if IsStringSet(flags.LogFile) {
		t.Logger.File = *flags.LogFile
	}
}

// LongPressDelay returns the long-press delay as a duration.
func (t *Tgv) LongPressDelay() time.Duration {
	t.mx.RLock()
	defer t.mx.RUnlock()

	if t.LongPressMs <= 0 {
		return DefaultLongPress
	}
	return time.Duration(t.LongPressMs) * time.Millisecond
}

// FieldDelimiter returns the delimiter as a rune. Multi-byte settings
// fall back to the first rune, an empty setting to tab.
func (t *Tgv) FieldDelimiter() rune {
	t.mx.RLock()
	defer t.mx.RUnlock()

	for _, r := range t.Delimiter {
		return r
	}
	return '\t'
}
