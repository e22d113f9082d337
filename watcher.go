package tilekit

import (
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
)

// eventBuffer is the capacity of the OS watch's event channel. Events that
// arrive between two polls queue here and are drained together.
const eventBuffer = 256

type watchState uint8

const (
	watchUninitialized watchState = iota // no OS watch yet; set up on first Poll
	watchActive                          // watching the asset directory
	watchDisabled                        // setup failed or Close was called
)

// Watcher reloads sprites whose PNG files change on disk. It is meant for
// ModeDebug builds, where the registry reads from the watched directory.
//
// The OS watch is opened lazily by the first Poll. If that fails, the
// watcher logs once and stays disabled; it never retries.
type Watcher struct {
	reg   *Registry
	dir   string
	state watchState
	fw    *fsnotify.Watcher
}

// NewWatcher returns a watcher that reloads reg's sprites when files in dir
// are written.
func NewWatcher(reg *Registry, dir string) *Watcher {
	return &Watcher{reg: reg, dir: dir}
}

// Active reports whether the watcher holds an open OS watch.
func (w *Watcher) Active() bool {
	return w.state == watchActive
}

func (w *Watcher) init() {
	fw, err := fsnotify.NewBufferedWatcher(eventBuffer)
	if err != nil {
		warnf("hot-reload disabled: %v", err)
		w.state = watchDisabled
		return
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		warnf("hot-reload disabled: watch %s: %v", w.dir, err)
		w.state = watchDisabled
		return
	}
	w.fw = fw
	w.state = watchActive
}

// Poll drains every pending file event without blocking and reloads each
// affected sprite once. It returns the ids that were reloaded successfully.
// Call it once per frame.
func (w *Watcher) Poll() []SpriteID {
	if w.state == watchUninitialized {
		w.init()
	}
	if w.state != watchActive {
		return nil
	}
	return w.handle(w.drain())
}

// drain collects every event queued on the OS watch, stopping once both
// channels are empty.
func (w *Watcher) drain() []fsnotify.Event {
	var events []fsnotify.Event
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				w.state = watchDisabled
				return events
			}
			events = append(events, ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				w.state = watchDisabled
				return events
			}
			warnf("hot-reload: %v", err)
		default:
			return events
		}
	}
}

// handle maps events to sprites and reloads each matched sprite once, in
// event order.
func (w *Watcher) handle(events []fsnotify.Event) []SpriteID {
	var pending []SpriteID
	for _, ev := range events {
		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			continue
		}
		name := filepath.Base(ev.Name)
		id, ok := w.reg.Table().LookupFile(name)
		if !ok {
			debugf("hot-reload: ignoring %s", name)
			continue
		}
		if !slices.Contains(pending, id) {
			pending = append(pending, id)
		}
	}

	var reloaded []SpriteID
	for _, id := range pending {
		name := w.reg.Table()[id].Filename()
		if err := w.reg.Reload(id); err != nil {
			// Editors often write in several steps; the next event retries.
			warnf("hot-reload: keeping old %s: %v", name, err)
			continue
		}
		warnf("reloaded sprite %s", name)
		reloaded = append(reloaded, id)
	}
	return reloaded
}

// Close releases the OS watch. Later polls do nothing.
func (w *Watcher) Close() error {
	w.state = watchDisabled
	if w.fw == nil {
		return nil
	}
	err := w.fw.Close()
	w.fw = nil
	return err
}
