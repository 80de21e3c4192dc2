package bunny

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/events"
)

const framesSettleDelay = 100 * time.Millisecond

// FramesWatcher is an event source reporting edits under a frames directory
// as FramesChanged events. Bursts of writes are coalesced into one event.
type FramesWatcher struct {
	dir       string
	watcher   *fsnotify.Watcher
	eventChan chan *events.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// NewFramesWatcher watches dir and its frame set subdirectories.
func NewFramesWatcher(dir string) (*FramesWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := []string{dir}
	entries, err := os.ReadDir(dir)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	fw := &FramesWatcher{
		dir:       dir,
		watcher:   w,
		eventChan: make(chan *events.Event),
		quit:      make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

// Name implements events.EventSource.
func (fw *FramesWatcher) Name() string {
	return "FramesWatcher"
}

// Events implements events.EventSource.
func (fw *FramesWatcher) Events() chan *events.Event {
	return fw.eventChan
}

// Close stops watching.
func (fw *FramesWatcher) Close() {
	fw.closeOnce.Do(func() {
		close(fw.quit)
	})
}

func (fw *FramesWatcher) run() {
	defer close(fw.eventChan)
	defer fw.watcher.Close()

	settle := time.NewTimer(framesSettleDelay)
	settle.Stop()
	pending := false

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = fw.watcher.Add(event.Name)
				}
			}
			if !isFrameFile(event.Name) && !isDirEvent(event) {
				continue
			}
			settle.Reset(framesSettleDelay)
			pending = true
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("frames watcher %s: %v", fw.dir, err)
		case <-settle.C:
			if !pending {
				continue
			}
			pending = false
			select {
			case fw.eventChan <- events.NewFramesChangedEvent(fw.dir):
			case <-fw.quit:
				return
			}
		case <-fw.quit:
			return
		}
	}
}

func isFrameFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".txt" || filepath.Base(name) == ManifestName
}

func isDirEvent(event fsnotify.Event) bool {
	return filepath.Ext(event.Name) == "" && event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
