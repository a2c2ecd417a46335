package pipeline

import (
	"fmt"
	"os"

	"tako/colors"
	"tako/internal/diagnostics"
	"tako/internal/frontend/ast"
	"tako/internal/phase"
)

// processFile schedules loading for a file exactly once (thread-safe)
func (p *Pipeline) processFile(file string) {
	if _, loaded := p.seen.LoadOrStore(file, struct{}{}); loaded {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.loadFile(file)
	}()
}

// loadFile decodes one tree dump and registers it with the database
func (p *Pipeline) loadFile(file string) {
	mod := &Module{File: file, Phase: phase.PhaseNotStarted}
	p.addModule(mod)

	data, err := os.ReadFile(file)
	if err != nil {
		p.Diagnostics.Add(diagnostics.UnreadableModule(file, err))
		return
	}
	root, err := ast.Decode(file, data)
	if err != nil {
		p.Diagnostics.Add(diagnostics.UnreadableModule(file, err))
		return
	}
	p.advance(mod, phase.PhaseLoaded)

	path, err := p.db.AddModule(file, root)
	if err != nil {
		p.Diagnostics.Add(diagnostics.UnreadableModule(file, err))
		return
	}
	if first, _ := p.db.Filename(path); first != file {
		p.Diagnostics.Add(diagnostics.UnreadableModule(file,
			fmt.Errorf("module %s is already loaded from %s", path, first)))
		return
	}
	mod.Path = path
	p.advance(mod, phase.PhaseIndexed)

	if p.opts.Debug > 0 {
		colors.PURPLE.Printf("  ✓ %s (%s)\n", path, file)
	}
}
