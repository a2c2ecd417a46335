// Package pipeline drives one compiler run: load every input module, lower
// each one to C++, then write and build the results.
package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"tako/colors"
	"tako/internal/codegen"
	"tako/internal/config"
	"tako/internal/database"
	"tako/internal/diagnostics"
	"tako/internal/phase"
	"tako/internal/symbols"
)

// Module is one input file and what the run produced for it
type Module struct {
	File       string
	Path       symbols.Path
	Phase      phase.ModulePhase
	Program    *codegen.Program
	SourcePath string // generated .cc
	Executable string

	mu sync.Mutex // Protects Phase during parallel loading
}

// Pipeline coordinates the compilation process
type Pipeline struct {
	opts        *config.Options
	db          *database.Memory
	Diagnostics *diagnostics.DiagnosticBag

	modules map[string]*Module
	mu      sync.RWMutex

	// seen ensures each file is scheduled exactly once
	seen sync.Map // map[string]struct{}

	// wg tracks all loading tasks
	wg sync.WaitGroup
}

// New creates a new compilation pipeline
func New(opts *config.Options) *Pipeline {
	if opts == nil {
		opts = config.Default()
	}
	return &Pipeline{
		opts:        opts,
		db:          database.NewMemory(opts),
		Diagnostics: diagnostics.NewDiagnosticBag(),
		modules:     make(map[string]*Module),
	}
}

// Database exposes the resolver facts gathered while loading.
func (p *Pipeline) Database() *database.Memory {
	return p.db
}

// Run executes the full compilation pipeline
func (p *Pipeline) Run() error {
	if len(p.opts.Files) == 0 {
		return fmt.Errorf("no input files")
	}

	if p.opts.Debug > 0 {
		colors.CYAN.Printf("\n[Phase 1] Load\n")
	}
	for _, file := range p.opts.Files {
		p.processFile(file)
	}
	p.wg.Wait()

	if p.Diagnostics.HasErrors() {
		return fmt.Errorf("loading failed with errors")
	}

	if p.opts.Debug > 0 {
		colors.CYAN.Printf("\n[Phase 2] Code Generation\n")
	}
	p.runCodegenPhase()

	if p.opts.Emit {
		p.emitPrograms()
	} else {
		if p.opts.Debug > 0 {
			colors.CYAN.Printf("\n[Phase 3] Build\n")
		}
		p.runBuildPhase()
	}

	if p.Diagnostics.HasErrors() {
		return fmt.Errorf("compilation failed with errors")
	}
	if p.opts.Debug > 0 {
		colors.GREEN.Printf("\n✓ Compilation successful! (%d modules)\n", len(p.Modules()))
	}
	return nil
}

// Modules returns every loaded module ordered by module path
func (p *Pipeline) Modules() []*Module {
	p.mu.RLock()
	defer p.mu.RUnlock()

	mods := make([]*Module, 0, len(p.modules))
	for _, mod := range p.modules {
		mods = append(mods, mod)
	}
	sort.Slice(mods, func(i, j int) bool {
		return mods[i].Path.String() < mods[j].Path.String()
	})
	return mods
}

// Module looks up a module by its input file
func (p *Pipeline) Module(file string) (*Module, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	mod, ok := p.modules[file]
	return mod, ok
}

func (p *Pipeline) addModule(mod *Module) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modules[mod.File] = mod
}

// advance moves a module to its next phase, reporting an out of order move.
func (p *Pipeline) advance(mod *Module, to phase.ModulePhase) {
	mod.mu.Lock()
	defer mod.mu.Unlock()
	if !phase.CanAdvance(mod.Phase, to) {
		p.Diagnostics.Add(diagnostics.NewError(
			fmt.Sprintf("internal compiler error: cannot advance %s from %s to %s", mod.File, mod.Phase, to)))
		return
	}
	mod.Phase = to
}

// outputFor picks the executable path for a module. An explicit output is
// used as is for a single input and as a directory for several.
func (p *Pipeline) outputFor(mod *Module) string {
	base := strings.TrimSuffix(filepath.Base(mod.File), filepath.Ext(mod.File))
	switch {
	case p.opts.OutputPath == "":
		return filepath.Join(filepath.Dir(mod.File), base)
	case len(p.opts.Files) == 1:
		return p.opts.OutputPath
	default:
		return filepath.Join(p.opts.OutputPath, base)
	}
}
