package config

import (
	"log/slog"

	"github.com/synthfront/qsynth/internal/config/notify"
	"github.com/synthfront/qsynth/internal/config/store"
	"github.com/synthfront/qsynth/internal/setup"
)

// Default values of the display options.
const (
	DefaultMessagesLimitLines = 1000
	DefaultMessagesLogPath    = "qsynth.log"
)

// Options holds the application preferences and the default engine's
// setup, backed by a settings store.
type Options struct {
	// Messages window.
	MessagesFont       string
	MessagesLimit      bool
	MessagesLimitLines int
	MessagesLog        bool
	MessagesLogPath    string

	// Main window behaviour.
	QueryClose     bool
	KeepOnTop      bool
	StdoutCapture  bool
	OutputMeters   bool
	SystemTray     bool
	StartMinimized bool
	KnobStyle      int
	KnobMotion     int

	// Defaults group.
	SoundFontDir  string
	PresetPreview bool

	engines      []string
	defaultSetup *setup.Setup

	store    *store.Store
	notifier *notify.Notifier
	logger   *slog.Logger
	version  string
}

// Option configures Options.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithVersion sets the program version written to /Program/Version.
func WithVersion(v string) Option {
	return func(o *Options) {
		o.version = v
	}
}

// WithNotifier sets the notifier that hears about engine, preset and
// reload changes.
func WithNotifier(n *notify.Notifier) Option {
	return func(o *Options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// New creates Options over st and loads everything it holds: the default
// setup, the display options, the defaults group and the engine list.
func New(st *store.Store, opts ...Option) *Options {
	o := &Options{
		store:        st,
		defaultSetup: setup.New(),
		notifier:     notify.New(),
		logger:       slog.Default(),
		version:      "dev",
	}
	for _, opt := range opts {
		opt(o)
	}

	o.checkVersion()
	o.load()
	return o
}

func (o *Options) load() {
	o.LoadSetup(o.defaultSetup, "")

	opts := o.store.Group("/Options")
	o.MessagesFont = opts.String("MessagesFont", "")
	o.MessagesLimit = opts.Bool("MessagesLimit", true)
	o.MessagesLimitLines = opts.Int("MessagesLimitLines", DefaultMessagesLimitLines)
	o.MessagesLog = opts.Bool("MessagesLog", false)
	o.MessagesLogPath = opts.String("MessagesLogPath", DefaultMessagesLogPath)
	o.QueryClose = opts.Bool("QueryClose", true)
	o.KeepOnTop = opts.Bool("KeepOnTop", false)
	o.StdoutCapture = opts.Bool("StdoutCapture", true)
	o.OutputMeters = opts.Bool("OutputMeters", false)
	o.SystemTray = opts.Bool("SystemTray", false)
	o.StartMinimized = opts.Bool("StartMinimized", false)
	o.KnobStyle = opts.Int("KnobStyle", 0)
	o.KnobMotion = opts.Int("KnobMotion", 0)

	defaults := o.store.Group("/Defaults")
	o.SoundFontDir = defaults.String("SoundFontDir", "")
	o.PresetPreview = defaults.Bool("PresetPreview", false)

	o.engines = o.store.Group("/Engines").ReadList("Engine")

	o.logger.Debug("options loaded",
		"engines", len(o.engines),
		"soundfonts", len(o.defaultSetup.SoundFonts),
		"presets", len(o.defaultSetup.Presets))
}

// checkVersion warns when the store was written by a newer program.
func (o *Options) checkVersion() {
	stored := o.store.Group("/Program").String("Version", "")
	if stored == "" {
		return
	}
	have, err := ParseVersion(stored)
	if err != nil {
		o.logger.Debug("unreadable settings version", "version", stored, "error", err)
		return
	}
	running, err := ParseVersion(o.version)
	if err != nil {
		return
	}
	if have.Compare(running) > 0 {
		o.logger.Warn("settings were written by a newer version",
			"settings", have.String(), "running", running.String())
	}
}

// Close writes the version, the engine list, the defaults group and the
// display options, then syncs the store.
func (o *Options) Close() error {
	o.store.Group("/Program").SetValue("Version", o.version)

	o.store.Group("/Engines").WriteList("Engine", o.engines)

	defaults := o.store.Group("/Defaults")
	defaults.SetValue("SoundFontDir", o.SoundFontDir)
	defaults.SetValue("PresetPreview", o.PresetPreview)

	opts := o.store.Group("/Options")
	opts.SetValue("MessagesFont", o.MessagesFont)
	opts.SetValue("MessagesLimit", o.MessagesLimit)
	opts.SetValue("MessagesLimitLines", o.MessagesLimitLines)
	opts.SetValue("MessagesLog", o.MessagesLog)
	opts.SetValue("MessagesLogPath", o.MessagesLogPath)
	opts.SetValue("QueryClose", o.QueryClose)
	opts.SetValue("KeepOnTop", o.KeepOnTop)
	opts.SetValue("StdoutCapture", o.StdoutCapture)
	opts.SetValue("OutputMeters", o.OutputMeters)
	opts.SetValue("SystemTray", o.SystemTray)
	opts.SetValue("StartMinimized", o.StartMinimized)
	opts.SetValue("KnobStyle", o.KnobStyle)
	opts.SetValue("KnobMotion", o.KnobMotion)

	return o.store.Sync()
}

// Reload re-reads the backing file and everything loaded from it. Values
// missing from the file return to their defaults.
func (o *Options) Reload() error {
	if err := o.store.Reload(); err != nil {
		return err
	}
	o.load()
	o.notifier.NotifyReload()
	return nil
}

// DefaultSetup returns the default engine's setup.
func (o *Options) DefaultSetup() *setup.Setup {
	return o.defaultSetup
}

// Engines returns the named engines in order.
func (o *Options) Engines() []string {
	return append([]string(nil), o.engines...)
}

// Store returns the backing settings store.
func (o *Options) Store() *store.Store {
	return o.store
}

// Notifier returns the change notifier.
func (o *Options) Notifier() *notify.Notifier {
	return o.notifier
}

// engineScope returns the scope holding a setup: the root for the default
// engine, /Engine/<name> otherwise.
func (o *Options) engineScope(name string) store.Scope {
	if name == "" {
		return o.store.Root()
	}
	return o.store.Group("/Engine").Group(name)
}
