// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgv

package view

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/tgv/tgv/internal/config"
	"github.com/tgv/tgv/internal/model"
	"github.com/tgv/tgv/internal/ui"
)

const (
	// FlashDelay sets the flash auto-clear delay.
	FlashDelay = 5 * time.Second
)

// FlashLevel represents flash message severity.
type FlashLevel int

const (
	// FlashInfo represents an info message.
	FlashInfo FlashLevel = iota
	// FlashWarn represents a warning message.
	FlashWarn
	// FlashErr represents an error message.
	FlashErr
)

// Flash handles flash messages in the application.
type Flash struct {
	*tview.TextView
	app    *App
	cancel context.CancelFunc
	mx     sync.RWMutex
}

// NewFlash creates a new Flash instance.
func NewFlash(app *App) *Flash {
	f := &Flash{
		TextView: tview.NewTextView(),
		app:      app,
	}
	f.SetDynamicColors(true)
	f.SetTextAlign(tview.AlignLeft)
	f.SetBorderPadding(0, 0, 1, 1)
	return f
}

// Info displays an informational message.
func (f *Flash) Info(msg string) {
	f.setMessage(FlashInfo, msg)
}

// Infof displays a formatted informational message.
func (f *Flash) Infof(format string, args ...interface{}) {
	f.Info(fmt.Sprintf(format, args...))
}

// Warn displays a warning message.
func (f *Flash) Warn(msg string) {
	f.setMessage(FlashWarn, msg)
}

// Err displays an error message.
func (f *Flash) Err(err error) {
	if err != nil {
		f.setMessage(FlashErr, err.Error())
	}
}

// Errf displays a formatted error message.
func (f *Flash) Errf(format string, args ...interface{}) {
	f.setMessage(FlashErr, fmt.Sprintf(format, args...))
}

// Clear clears the flash message.
func (f *Flash) Clear() {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if f.app != nil {
		f.app.QueueUpdateDraw(func() {
			f.TextView.Clear()
		})
	} else {
		f.TextView.Clear()
	}
}

func (f *Flash) setMessage(level FlashLevel, msg string) {
	f.mx.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mx.Unlock()

	if msg == "" {
		f.Clear()
		return
	}

	updateFn := func() {
		f.TextView.Clear()
		f.SetTextColor(flashColor(level))
		fmt.Fprintf(f.TextView, "%s %s", flashPrefix(level), msg)
	}

	if f.app != nil {
		f.app.QueueUpdateDraw(updateFn)
	} else {
		updateFn()
	}

	ctx, cancel := context.WithCancel(context.Background())
	f.mx.Lock()
	f.cancel = cancel
	f.mx.Unlock()

	go f.autoClear(ctx)
}

func (f *Flash) autoClear(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(FlashDelay):
		f.Clear()
	}
}

func flashColor(level FlashLevel) tcell.Color {
	switch level {
	case FlashWarn:
		return tcell.ColorYellow
	case FlashErr:
		return tcell.ColorRed
	default:
		return tcell.ColorGreen
	}
}

func flashPrefix(level FlashLevel) string {
	switch level {
	case FlashWarn:
		return "[WARN]"
	case FlashErr:
		return "[ERROR]"
	default:
		return "[INFO]"
	}
}

// App represents the main application container.
type App struct {
	*tview.Application

	version    string
	cfg        *config.Config
	Main       *tview.Pages
	content    *Browser
	model      model.TableModel
	indicator  *ui.Indicator
	menu       *ui.Menu
	flash      *Flash
	help       *Help
	recognizer *ui.GestureRecognizer
	running    bool
	mx         sync.RWMutex
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, version string) *App {
	app := &App{
		Application: tview.NewApplication(),
		version:     version,
		cfg:         cfg,
		Main:        tview.NewPages(),
	}

	app.flash = NewFlash(app)
	app.menu = ui.NewMenu()
	app.indicator = ui.NewIndicator()
	app.help = NewHelp()

	return app
}

// Init builds the application layout around the given table model.
func (a *App) Init(m model.TableModel) error {
	a.model = m
	a.content = NewBrowser(m)
	a.content.SetApp(a)
	a.content.SetWatch(a.cfg.Tgv.Watch)

	if err := a.content.Init(context.Background()); err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}

	a.applyTheme()

	a.recognizer = ui.NewGestureRecognizer(a.cfg.Tgv.LongPressDelay())

	a.Main.AddPage("main", a.buildLayout(), true, true)
	a.SetRoot(a.Main, true)
	a.SetFocus(a.content)

	a.Application.SetInputCapture(a.keyboard)
	a.Application.EnableMouse(a.cfg.Tgv.UI.EnableMouse)
	a.Application.SetMouseCapture(a.mouse)

	a.menu.HydrateMenu(a.hints())
	if a.cfg.Tgv.Watch {
		a.indicator.SetMessage("[gray::d]watching[-::-]")
	}

	return nil
}

// Run starts the application.
func (a *App) Run() error {
	a.mx.Lock()
	a.running = true
	a.mx.Unlock()

	a.content.Start()
	defer a.content.Stop()

	return a.Application.Run()
}

// Stop stops the application.
func (a *App) Stop() {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.running = false
	a.Application.Stop()
}

// IsRunning returns whether the application is currently running.
func (a *App) IsRunning() bool {
	a.mx.RLock()
	defer a.mx.RUnlock()
	return a.running
}

// Flash returns the flash message handler.
func (a *App) Flash() *Flash {
	return a.flash
}

// QueueUpdateDraw queues a function to be executed on the UI thread.
func (a *App) QueueUpdateDraw(fn func()) {
	go a.Application.QueueUpdateDraw(fn)
}

// applyTheme loads the theme file and projects it onto the grid.
func (a *App) applyTheme() {
	th, err := config.LoadTheme(config.AppThemeFile)
	if err != nil {
		a.flash.Errf("Theme load failed: %v", err)
		th = config.DefaultTheme()
	}

	a.content.SetStyles(ui.GridStyles{
		HeaderFg:    tcell.GetColor(th.HeaderFg),
		BodyFg:      tcell.GetColor(th.BodyFg),
		SelectFg:    tcell.GetColor(th.SelectFg),
		SelectBg:    tcell.GetColor(th.SelectBg),
		HighlightBg: tcell.GetColor(th.HighlightBg),
	})
}

// refreshStatus syncs the indicator with the model state.
func (a *App) refreshStatus() {
	data := a.model.Peek()
	a.indicator.SetSource(filepath.Base(data.Source()), data.RowCount())

	col, asc := a.model.SortState()
	header := a.model.Header()
	if col >= 0 && col < len(header) {
		a.indicator.SetSort(header[col].Name, asc)
	} else {
		a.indicator.SetSort("", true)
	}
}

// buildLayout creates the main UI layout.
func (a *App) buildLayout() *tview.Flex {
	bottomBar := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.flash, 1, 0, false).
		AddItem(a.menu, 2, 0, false)

	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.content, 0, 1, true).
		AddItem(a.indicator, 1, 0, false).
		AddItem(bottomBar, 3, 0, false)

	if a.cfg.Tgv.UI.Menuless {
		main = tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(a.content, 0, 1, true).
			AddItem(a.indicator, 1, 0, false)
	}

	return main
}

// hints collects the menu hints shown at the bottom of the screen.
func (a *App) hints() ui.MenuHints {
	hh := a.content.Hints()
	hh = append(hh,
		ui.MenuHint{Mnemonic: "?", Description: "Help", Visible: true},
		ui.MenuHint{Mnemonic: "q", Description: "Quit", Visible: true},
	)
	return hh
}

// keyboard handles global keyboard events.
func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if name, _ := a.Main.GetFrontPage(); name == "help" {
		return evt
	}

	if evt.Key() == tcell.KeyRune {
		switch evt.Rune() {
		case '?':
			a.showHelp()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
	}

	if evt.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}

	return evt
}

// mouse folds raw mouse events into gestures and feeds them to the
// browser. Left button events are consumed, everything else passes
// through to tview.
func (a *App) mouse(evt *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if evt == nil || a.recognizer == nil {
		return evt, action
	}

	x, y := evt.Position()

	var gg []ui.Gesture
	switch action {
	case tview.MouseLeftDown:
		gg = a.recognizer.ButtonDown(x, y)
	case tview.MouseMove:
		gg = a.recognizer.Move(x, y)
		if len(gg) == 0 {
			return evt, action
		}
	case tview.MouseLeftUp, tview.MouseLeftClick:
		gg = a.recognizer.ButtonUp(x, y)
	default:
		return evt, action
	}

	for _, g := range gg {
		a.content.HandleGesture(g)
	}

	return nil, action
}

// showHelp displays the help screen.
func (a *App) showHelp() {
	a.help.SetCloseFn(func() {
		a.Main.RemovePage("help")
		a.SetFocus(a.content)
	})

	a.Main.AddPage("help", a.help, true, true)
	a.SetFocus(a.help)
}
