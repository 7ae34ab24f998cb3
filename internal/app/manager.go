package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/calumwaite/rebrace/internal/config"
	"github.com/calumwaite/rebrace/internal/docs"
	"github.com/calumwaite/rebrace/internal/project"
	"github.com/calumwaite/rebrace/internal/report"
)

// maxConcurrentRenders bounds the number of CODE.md pages rendered at once.
const maxConcurrentRenders = 4

// Manager defines the business logic for rebrace operations.
type Manager interface {
	Reformat(ctx context.Context, verbose bool, format string, useColour bool) error
	WatchReformat(ctx context.Context, verbose bool, format string, useColour bool,
		readyChan chan<- struct{}) error
	GenerateDocs(ctx context.Context, problems []string, all bool) error
	FixLinks() error
	Collapse() error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Reformat(ctx context.Context, verbose bool, format string, useColour bool) error {
	return l.check().Reformat(ctx, verbose, format, useColour)
}

func (l *LazyManager) WatchReformat(ctx context.Context, verbose bool, format string, useColour bool,
	readyChan chan<- struct{},
) error {
	return l.check().WatchReformat(ctx, verbose, format, useColour, readyChan)
}

func (l *LazyManager) GenerateDocs(ctx context.Context, problems []string, all bool) error {
	return l.check().GenerateDocs(ctx, problems, all)
}

func (l *LazyManager) FixLinks() error {
	return l.check().FixLinks()
}

func (l *LazyManager) Collapse() error {
	return l.check().Collapse()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	project        *project.Project
	reporterWriter io.Writer
}

func NewCLIManager(l *slog.Logger, p *project.Project) *CLIManager {
	return &CLIManager{
		logger:         l,
		project:        p,
		reporterWriter: os.Stdout,
	}
}

func (m *CLIManager) reporter(format string, verbose, useColour bool) project.Reporter {
	switch format {
	case "json":
		return &report.JSONReporter{}
	default:
		return &report.TextReporter{Verbose: verbose, UseColour: useColour}
	}
}

func (m *CLIManager) Reformat(ctx context.Context, verbose bool, format string, useColour bool) error {
	m.logger.Debug("reformatting candidates", "verbose", verbose, "format", format, "useColour", useColour)

	runner := project.NewRunner(m.project, m.logger)
	r, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	return m.reporter(format, verbose, useColour).Write(m.reporterWriter, r)
}

// WatchReformat watches the source root and reformats files as they change.
// If you want to know when the watcher is ready to start listening to changes,
// pass a non-nil readyChan to be notified.
func (m *CLIManager) WatchReformat(ctx context.Context, verbose bool, format string, useColour bool,
	readyChan chan<- struct{},
) error {
	m.logger.Debug("watching for collapsed files", "verbose", verbose, "format", format, "useColour", useColour)

	watcher := project.NewWatcher(m.project, m.logger)

	callback := func(event project.WatchEvent) {
		m.logger.Info("Source changed:", "path", event.Path)

		// A fresh runner per event keeps each report scoped to one change.
		r := project.NewRunner(m.project, m.logger).RunOne(event.Path)
		if len(r.Reformatted)+len(r.Skipped)+len(r.Failures) == 0 {
			return
		}

		if err := m.reporter(format, verbose, useColour).Write(m.reporterWriter, r); err != nil {
			m.logger.Error("Failed to write report", "error", err)
		}
	}

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go func() {
			<-watcher.Ready
			readyChan <- struct{}{}
		}()
	}

	return watcher.Watch(ctx, callback)
}

func (m *CLIManager) GenerateDocs(ctx context.Context, problems []string, all bool) error {
	m.logger.Debug("generating docs", "problems", problems, "all", all)

	cfg := m.project.Config()

	names := problems
	if all {
		names = nil
		for _, n := range cfg.ProblemNames() {
			names = append(names, string(n))
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no problems selected: pass one or more problem names, or --all")
	}
	sort.Strings(names)

	renderer := docs.NewRenderer(m.project)
	counts := make([]int, len(names))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRenders)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			prob, err := cfg.Problem(config.ProblemName(name))
			if err != nil {
				return err
			}
			count, err := renderer.Render(prob)
			if err != nil {
				return err
			}
			counts[i] = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		fmt.Fprintf(m.reporterWriter, "📄 Generated CODE.md for %s (%d files)\n", name, counts[i])
	}
	return nil
}

func (m *CLIManager) FixLinks() error {
	m.logger.Debug("fixing CODE links", "docsRoot", m.project.DocsRoot())

	fixed, err := docs.FixLinks(m.project.DocsRoot())
	if err != nil {
		return err
	}

	for _, name := range fixed {
		fmt.Fprintf(m.reporterWriter, "🔗 %s\n", name)
	}
	fmt.Fprintf(m.reporterWriter, "Fixed CODE links in %d README files\n", len(fixed))
	return nil
}

func (m *CLIManager) Collapse() error {
	m.logger.Debug("collapsing code blocks", "docsRoot", m.project.DocsRoot())

	updated, err := docs.Collapse(m.project.DocsRoot())
	if err != nil {
		return err
	}

	for _, name := range updated {
		fmt.Fprintf(m.reporterWriter, "📦 %s\n", name)
	}
	fmt.Fprintf(m.reporterWriter, "Updated %d CODE.md files with collapsible sections\n", len(updated))
	return nil
}
