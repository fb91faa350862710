package model

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tgv/tgv/internal/model1"
	"github.com/tgv/tgv/internal/render"
	"github.com/tgv/tgv/internal/tsv"
)

// watchDebounce drops bursts of file events from editors that write in
// multiple syscalls.
const watchDebounce = 200 * time.Millisecond

var _ TableModel = (*TableData)(nil)

// TableData loads and manages tabular data from a delimited file.
type TableData struct {
	path      string
	delimiter rune
	renderer  model1.Renderer
	data      *model1.TableData
	sortCol   int
	sortAsc   bool

	// sort requested by name before the header is known
	pendingSortName string
	pendingSortAsc  bool

	listeners []TableListener
	cancelFn  context.CancelFunc
	mx        sync.RWMutex
}

// NewTableData creates a table model for the given file.
func NewTableData(path string, delimiter rune) *TableData {
	return &TableData{
		path:      path,
		delimiter: delimiter,
		data:      model1.NewTableData(),
		sortCol:   -1,
		sortAsc:   true,
		listeners: make([]TableListener, 0, 2),
	}
}

// Path returns the source file path.
func (t *TableData) Path() string {
	return t.path
}

// Header returns the table header.
func (t *TableData) Header() model1.Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.Header()
}

// RowCount returns the number of data rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.RowCount()
}

// RowAt returns the data row at the given index.
func (t *TableData) RowAt(i int) (model1.Row, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.RowAt(i)
}

// Peek returns a snapshot of the current table data.
func (t *TableData) Peek() *model1.TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.Clone()
}

// Colorer returns the renderer's row colorer, nil before first load.
func (t *TableData) Colorer() model1.ColorerFunc {
	t.mx.RLock()
	defer t.mx.RUnlock()

	if t.renderer == nil {
		return nil
	}
	return t.renderer.ColorerFunc()
}

// SortState reports the active sort column and direction.
func (t *TableData) SortState() (int, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sortCol, t.sortAsc
}

// SetDefaultSort presets the sort column by name. Takes effect on the
// next load.
func (t *TableData) SetDefaultSort(colName string, asc bool) {
	t.mx.Lock()
	defer t.mx.Unlock()

	if idx, ok := t.data.Header().IndexOf(colName, true); ok {
		t.sortCol, t.sortAsc = idx, asc
		t.sortLocked()
		return
	}
	t.pendingSortName, t.pendingSortAsc = colName, asc
}

// SortBy sorts the data by the given column, synchronously. Sorting by
// the active column again flips the direction.
func (t *TableData) SortBy(col int) {
	t.mx.Lock()
	defer t.mx.Unlock()

	if col < 0 || col >= len(t.data.Header()) {
		return
	}
	if col == t.sortCol {
		t.sortAsc = !t.sortAsc
	} else {
		t.sortCol, t.sortAsc = col, true
	}
	t.sortLocked()
}

// AddListener registers a table listener.
func (t *TableData) AddListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a table listener.
func (t *TableData) RemoveListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Refresh reloads the file and notifies listeners.
func (t *TableData) Refresh(_ context.Context) error {
	tbl, err := tsv.ReadFile(t.path, t.delimiter)
	if err != nil {
		t.notifyLoadFailed(err)
		return err
	}

	t.mx.Lock()
	if t.renderer == nil {
		t.renderer = render.NewDocument(tbl.Columns, tbl.Records)
	}
	header := t.renderer.Header(tbl.Columns)

	rows := make(model1.Rows, 0, len(tbl.Records))
	for _, rec := range tbl.Records {
		var row model1.Row
		if err := t.renderer.Render(rec, &row); err != nil {
			t.mx.Unlock()
			t.notifyLoadFailed(fmt.Errorf("render record: %w", err))
			return err
		}
		rows = append(rows, row)
	}

	data := model1.NewTableData()
	data.SetHeader(header)
	data.SetRows(rows)
	data.SetSource(t.path)
	t.data = data

	if t.pendingSortName != "" {
		if idx, ok := header.IndexOf(t.pendingSortName, true); ok {
			t.sortCol, t.sortAsc = idx, t.pendingSortAsc
		}
		t.pendingSortName = ""
	}
	t.sortLocked()
	t.mx.Unlock()

	t.notifyDataChanged()
	return nil
}

// Watch reloads the file on filesystem changes until ctx is done. The
// containing directory is watched since editors commonly replace files
// instead of writing them in place.
func (t *TableData) Watch(ctx context.Context) error {
	t.mx.Lock()
	if t.cancelFn != nil {
		t.cancelFn()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	t.cancelFn = cancel
	t.mx.Unlock()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(t.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %q: %w", filepath.Dir(t.path), err)
	}

	go t.watchLoop(watchCtx, watcher)
	return nil
}

func (t *TableData) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	base := filepath.Base(t.path)
	var lastEvent time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			now := time.Now()
			if now.Sub(lastEvent) < watchDebounce {
				continue
			}
			lastEvent = now

			if err := t.Refresh(ctx); err != nil {
				slog.Warn("reload after file change failed", "path", t.path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "path", t.path, "error", err)
		}
	}
}

// sortLocked applies the active sort to the row set. Callers hold the lock.
func (t *TableData) sortLocked() {
	if t.sortCol < 0 {
		return
	}
	header := t.data.Header()
	if t.sortCol >= len(header) {
		return
	}
	model1.RowSorter{
		Rows:    t.data.Rows(),
		Index:   t.sortCol,
		Numeric: header.IsNumericCol(t.sortCol),
		Asc:     t.sortAsc,
	}.Sort()
}

func (t *TableData) notifyDataChanged() {
	t.mx.RLock()
	listeners := make([]TableListener, len(t.listeners))
	copy(listeners, t.listeners)
	data := t.data.Clone()
	t.mx.RUnlock()

	for _, l := range listeners {
		l.TableDataChanged(data)
	}
}

func (t *TableData) notifyLoadFailed(err error) {
	t.mx.RLock()
	listeners := make([]TableListener, len(t.listeners))
	copy(listeners, t.listeners)
	t.mx.RUnlock()

	for _, l := range listeners {
		l.TableLoadFailed(err)
	}
}
