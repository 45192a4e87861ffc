package studio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/solarlune/scrollstage/timeline"
)

// Watcher watches a YAML state file, decoding it whenever it's written. Decoded states wait in the Watcher until Poll
// picks them up; only the newest is kept. Files that fail to decode are logged and skipped.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *timeline.ProjectState

	done chan struct{}
	wg   sync.WaitGroup
}

// Watch starts watching the state file at the path given. The file doesn't need to exist yet; its directory does.
func Watch(path string) (*Watcher, error) {

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("studio: watching %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("studio: watching %s: %w", path, err)
	}

	// Editors often save by replacing the file, so the directory is watched rather than the file itself.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("studio: watching %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		done:    make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil

}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) run() {

	defer w.wg.Done()

	for {
		select {

		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				Logger().Debug("ignoring file event", "path", event.Name, "op", event.Op.String())
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			Logger().Warn("file watch error", "path", w.path, "err", err)

		}
	}

}

func (w *Watcher) reload() {

	data, err := os.ReadFile(w.path)
	if err != nil {
		Logger().Warn("reading state file", "path", w.path, "err", err)
		return
	}

	// Writes can show up before the editor has filled the file.
	if len(data) == 0 {
		return
	}

	state, err := timeline.ParseState(data)
	if err != nil {
		Logger().Warn("decoding state file", "path", w.path, "err", err)
		return
	}

	w.mu.Lock()
	w.pending = &state
	w.mu.Unlock()

}

// Poll returns the newest state decoded since the last Poll, if there is one. It never blocks.
func (w *Watcher) Poll() (timeline.ProjectState, bool) {

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return timeline.ProjectState{}, false
	}

	state := *w.pending
	w.pending = nil
	return state, true

}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
