// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgv

package view

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"

	"github.com/tgv/tgv/internal/model"
	"github.com/tgv/tgv/internal/model1"
	"github.com/tgv/tgv/internal/ui"
)

var (
	_ ui.Component                     = (*Browser)(nil)
	_ ui.SelectionDelegate[model1.Row] = (*Browser)(nil)
	_ model.TableListener              = (*Browser)(nil)
)

// Browser displays a document as a sortable, selectable grid. It owns
// the selection controller and acts as its delegate: sorting goes to the
// table model, row identity is the row content.
type Browser struct {
	*ui.TableGrid

	app      *App
	model    model.TableModel
	ctrl     *ui.SelectionController[model1.Row]
	actions  *ui.KeyActions
	watch    bool
	cancelFn context.CancelFunc
	mx       sync.RWMutex
}

// NewBrowser returns a new document browser over the given model.
func NewBrowser(m model.TableModel) *Browser {
	return &Browser{
		TableGrid: ui.NewTableGrid(m),
		model:     m,
		actions:   ui.NewKeyActions(),
	}
}

// SetApp sets the App reference for flash messages and redraws.
func (b *Browser) SetApp(a *App) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.app = a
}

// SetWatch enables reloading when the source file changes on disk.
func (b *Browser) SetWatch(on bool) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.watch = on
}

// Controller exposes the selection controller for gesture dispatch.
func (b *Browser) Controller() *ui.SelectionController[model1.Row] {
	return b.ctrl
}

// Init initializes the browser component.
func (b *Browser) Init(ctx context.Context) error {
	b.ctrl = ui.NewSelectionController[model1.Row](b.TableGrid)
	b.ctrl.SetDelegate(b)
	b.bindKeys(b.actions)

	b.SetInputCapture(b.keyboard)

	return nil
}

// Start loads the document and begins watching when enabled.
func (b *Browser) Start() {
	b.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	b.mx.Lock()
	b.cancelFn = cancel
	watch := b.watch
	b.mx.Unlock()

	b.model.AddListener(b)

	go func() {
		if err := b.model.Refresh(ctx); err != nil {
			slog.Error("document load failed", "error", err)
		}
		if watch {
			if err := b.model.Watch(ctx); err != nil {
				slog.Error("document watch failed", "error", err)
			}
		}
	}()
}

// Stop terminates browser updates.
func (b *Browser) Stop() {
	b.mx.Lock()
	if b.cancelFn != nil {
		b.cancelFn()
		b.cancelFn = nil
	}
	b.mx.Unlock()

	b.model.RemoveListener(b)
}

// Name returns the component name.
func (b *Browser) Name() string {
	return "browser"
}

// Hints returns menu hints for this browser.
func (b *Browser) Hints() ui.MenuHints {
	return b.actions.Hints()
}

// HandleGesture dispatches a normalized gesture to the selection
// controller.
func (b *Browser) HandleGesture(g ui.Gesture) {
	if b.ctrl == nil {
		return
	}

	switch g.Kind {
	case ui.GestureTap:
		b.ctrl.HandleActivation(g.X, g.Y)
	case ui.GesturePress:
		b.ctrl.HandlePress(g.Phase, g.X, g.Y)
	}
}

// SortBy reorders the model by the given column.
func (b *Browser) SortBy(col int) {
	b.model.SortBy(col)
}

// DidSelectRow surfaces the selected row in the status bar.
func (b *Browser) DidSelectRow(row int) {
	r, ok := b.model.RowAt(row - 1)
	if !ok {
		return
	}

	slog.Debug("row selected", "row", row, "id", r.ID)
	if app := b.getApp(); app != nil {
		app.Flash().Infof("Selected %s", summarize(r))
		app.refreshStatus()
	}
}

// LongPressStart marks the press target in the status bar.
func (b *Browser) LongPressStart(row int) {
	slog.Debug("long press start", "row", row)
	if app := b.getApp(); app != nil {
		app.Flash().Info("Release to select...")
	}
}

// LongPressEnd clears the press feedback.
func (b *Browser) LongPressEnd(row int) {
	slog.Debug("long press end", "row", row)
}

// IdentityForRow returns the content identity of a grid row.
func (b *Browser) IdentityForRow(row int) (model1.Row, bool) {
	r, ok := b.model.RowAt(row - 1)
	if !ok {
		return model1.Row{}, false
	}
	return r.Clone(), true
}

// IdentitiesEqual reports whether two rows carry the same content.
func (b *Browser) IdentitiesEqual(a, c model1.Row) bool {
	return a.Fields.Equal(c.Fields)
}

// TableDataChanged notifies view new data is available.
func (b *Browser) TableDataChanged(data *model1.TableData) {
	app := b.getApp()
	if app == nil {
		return
	}

	app.QueueUpdateDraw(func() {
		if data.HasError() {
			b.ShowError(data.Error())
			return
		}
		b.RefreshFromModel()
		app.refreshStatus()
	})
}

// TableLoadFailed notifies view the load went sideways.
func (b *Browser) TableLoadFailed(err error) {
	app := b.getApp()
	if app == nil {
		return
	}

	app.QueueUpdateDraw(func() {
		b.ShowError(err.Error())
		app.Flash().Err(err)
	})
}

func (b *Browser) getApp() *App {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.app
}

// bindKeys sets up browser-specific key bindings.
func (b *Browser) bindKeys(aa *ui.KeyActions) {
	aa.Bulk(ui.KeyMap{
		ui.KeyJ:        ui.NewKeyAction("Down", b.moveDown, true),
		ui.KeyK:        ui.NewKeyAction("Up", b.moveUp, true),
		ui.KeyS:        ui.NewKeyAction("Sort Next Col", b.cycleSort, true),
		tcell.KeyCtrlR: ui.NewKeyAction("Reload", b.reload, true),
	})
}

func (b *Browser) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if a, ok := b.actions.Get(ui.AsKey(evt)); ok {
		return a.Action(evt)
	}
	return evt
}

func (b *Browser) moveDown(*tcell.EventKey) *tcell.EventKey {
	b.moveSelection(1)
	return nil
}

func (b *Browser) moveUp(*tcell.EventKey) *tcell.EventKey {
	b.moveSelection(-1)
	return nil
}

// moveSelection shifts the selection by delta data rows, clamped to the
// grid. With no current selection the first data row is selected.
func (b *Browser) moveSelection(delta int) {
	last := b.RowCount() - 1
	if last < 1 {
		return
	}

	next := 1
	if cur, ok := b.ctrl.CurrentSelectedRow(); ok {
		next = cur + delta
	}
	if next < 1 {
		next = 1
	}
	if next > last {
		next = last
	}

	b.ctrl.SelectRow(next)
	b.DidSelectRow(next)
}

// cycleSort sorts by the column after the current sort column, wrapping
// around, carrying the selection across the reorder.
func (b *Browser) cycleSort(*tcell.EventKey) *tcell.EventKey {
	cols := len(b.model.Header())
	if cols == 0 {
		return nil
	}

	col, _ := b.model.SortState()
	next := col + 1
	if next >= cols {
		next = 0
	}
	b.ctrl.SortColumn(next)

	if app := b.getApp(); app != nil {
		app.refreshStatus()
	}
	return nil
}

func (b *Browser) reload(*tcell.EventKey) *tcell.EventKey {
	go func() {
		if err := b.model.Refresh(context.Background()); err != nil {
			slog.Error("document reload failed", "error", err)
		}
	}()
	return nil
}

// summarize renders a row's leading fields for the flash bar.
func summarize(r model1.Row) string {
	const maxFields = 3

	ff := r.Fields
	if len(ff) > maxFields {
		ff = ff[:maxFields]
	}
	return strings.Join(ff, " | ")
}
