package pipeline

import (
	"fmt"
	"io"

	"tako/colors"
	"tako/internal/phase"
	"tako/internal/utils/strings"
)

// PrintSummary prints a summary of the compilation
func (p *Pipeline) PrintSummary(w io.Writer) {
	mods := p.Modules()

	fmt.Fprintln(w)
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	colors.CYAN.Fprintln(w, "        COMPILATION SUMMARY")
	colors.CYAN.Fprintln(w, "═══════════════════════════════════════")
	fmt.Fprintf(w, "Total: %s\n\n", strings.Count(len(mods), "module", "modules"))

	for _, mod := range mods {
		fmt.Fprintf(w, " - %s (%s) %s\n", mod.Path, mod.File, mod.Phase)
		if mod.Executable != "" && mod.Phase == phase.PhaseBuilt {
			colors.GREEN.Fprintf(w, "     -> %s\n", mod.Executable)
		}
	}
}
