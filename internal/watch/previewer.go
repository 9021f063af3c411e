package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"binviz/internal/config"
	"binviz/internal/convert"
	"binviz/internal/filetype"
	"binviz/internal/log"
	"binviz/internal/session"
)

// Status describes a running previewer
type Status struct {
	Running          bool
	WatchDirectories []string
	LastActivity     time.Time
	FilesPreviewed   int
}

// Handler receives each preview, or the error of a failed load.
type Handler func(path string, preview *convert.Preview, err error)

// Previewer dumps every matching file that appears in the watched
// directories through a session shell.
type Previewer struct {
	config  *config.Config
	shell   *session.Shell
	watcher *Watcher

	mutex        sync.RWMutex
	handler      Handler
	previewed    int
	lastActivity time.Time
	running      bool
	done         chan struct{}
}

// NewPreviewer creates a previewer for the directories and patterns in cfg.
func NewPreviewer(cfg *config.Config, shell *session.Shell) (*Previewer, error) {
	matcher, err := filetype.NewMatcher(cfg.Image.Patterns)
	if err != nil {
		return nil, err
	}
	watcher, err := New(matcher)
	if err != nil {
		return nil, err
	}
	return &Previewer{
		config:  cfg,
		shell:   shell,
		watcher: watcher,
	}, nil
}

// SetHandler sets the function called after every load
func (p *Previewer) SetHandler(h Handler) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.handler = h
}

// AddWatchDirectory adds a directory on top of the configured ones
func (p *Previewer) AddWatchDirectory(dir string) error {
	return p.watcher.AddDirectory(dir)
}

// Start watches the configured directories until ctx is done or Stop is
// called.
func (p *Previewer) Start(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.running {
		return fmt.Errorf("previewer is already running")
	}

	for _, dir := range p.config.Watch.Directories {
		if err := p.watcher.AddDirectory(dir); err != nil {
			return fmt.Errorf("error adding watch directory %s: %w", dir, err)
		}
	}
	if len(p.watcher.Directories()) == 0 {
		return fmt.Errorf("no directories to watch")
	}
	if err := p.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	p.running = true
	p.done = make(chan struct{})
	go p.processEvents(ctx)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-p.done:
		}
	}()
	return nil
}

// Stop halts the previewer
func (p *Previewer) Stop() {
	p.mutex.Lock()
	if !p.running {
		p.mutex.Unlock()
		return
	}
	p.running = false
	close(p.done)
	p.mutex.Unlock()

	p.watcher.Stop()
}

// Status returns the current status of the previewer
func (p *Previewer) Status() Status {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return Status{
		Running:          p.running,
		WatchDirectories: p.watcher.Directories(),
		LastActivity:     p.lastActivity,
		FilesPreviewed:   p.previewed,
	}
}

func (p *Previewer) processEvents(ctx context.Context) {
	for ev := range p.watcher.Events() {
		p.mutex.Lock()
		p.lastActivity = ev.Timestamp
		p.mutex.Unlock()

		p.previewFile(ctx, ev.Path)
	}
}

func (p *Previewer) previewFile(ctx context.Context, path string) {
	preview, err := p.shell.LoadImage(ctx, path)

	p.mutex.Lock()
	if err == nil {
		p.previewed++
	}
	h := p.handler
	p.mutex.Unlock()

	if err != nil {
		log.LogWithError(err).Warn("preview failed")
	}
	if h != nil {
		h(path, preview, err)
	}
}
