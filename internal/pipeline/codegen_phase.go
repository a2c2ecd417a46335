package pipeline

import (
	"fmt"
	"os"

	"tako/colors"
	"tako/internal/codegen"
	"tako/internal/diagnostics"
	"tako/internal/phase"
)

// runCodegenPhase lowers every indexed module. A failure aborts only the
// module it belongs to.
func (p *Pipeline) runCodegenPhase() {
	for _, mod := range p.Modules() {
		if mod.Phase < phase.PhaseIndexed {
			continue
		}
		prog, err := codegen.New(p.db).Program(mod.Path)
		if err != nil {
			p.Diagnostics.AddError(err)
			continue
		}
		mod.Program = prog
		p.advance(mod, phase.PhaseLowered)

		if p.opts.Debug > 0 {
			colors.PURPLE.Printf("  ✓ %s (%d includes, flags %v)\n", mod.Path, len(prog.Includes), prog.Flags)
		}
	}
}

// emitPrograms prints generated sources instead of building them
func (p *Pipeline) emitPrograms() {
	out := p.opts.Out()
	mods := p.Modules()
	for _, mod := range mods {
		if mod.Program == nil {
			continue
		}
		if len(mods) > 1 {
			fmt.Fprintf(out, "// %s\n", mod.Path)
		}
		fmt.Fprint(out, mod.Program.Source)
	}
}

// runBuildPhase writes each program next to its executable and compiles it
func (p *Pipeline) runBuildPhase() {
	for _, mod := range p.Modules() {
		if mod.Phase < phase.PhaseLowered {
			continue
		}
		mod.Executable = p.outputFor(mod)
		mod.SourcePath = mod.Executable + ".cc"

		if err := codegen.WriteSource(mod.SourcePath, codegen.FormatSource(mod.Program.Source)); err != nil {
			p.Diagnostics.Add(diagnostics.BuildFailed(mod.SourcePath, err))
			continue
		}
		p.advance(mod, phase.PhaseWritten)

		opts := codegen.DefaultBuildOptions(p.opts)
		opts.OutputPath = mod.Executable
		opts.LinkFlags = mod.Program.Flags
		if err := codegen.BuildExecutable(mod.SourcePath, opts); err != nil {
			p.Diagnostics.Add(diagnostics.BuildFailed(mod.SourcePath, err))
			continue
		}
		p.advance(mod, phase.PhaseBuilt)

		if !p.opts.Keep {
			os.Remove(mod.SourcePath)
		}
	}
}
