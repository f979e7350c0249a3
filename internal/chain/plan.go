package chain

import (
	"fmt"
	"io"

	"github.com/aleph-sh/aleph/internal/config"
)

// PrintPlan writes a human-readable execution plan for the chain without
// invoking the model or touching the working memory. Reservoir sources are
// probed so missing files surface before a real run.
func (r *Runner) PrintPlan(w io.Writer) {
	total := len(r.Config.Protocols)
	fmt.Fprintf(w, "chain %q: %d protocol(s), model %s, timeout %dm\n\n", r.Config.Name, total, r.Config.Model, r.Config.Timeout)
	for i := range r.Config.Protocols {
		p := &r.Config.Protocols[i]
		if !p.Included {
			fmt.Fprintf(w, "[%d/%d] %s (skipped)\n", i+1, total, p.Name)
			continue
		}
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, total, p.Name)
		fmt.Fprintf(w, "      pattern: %s\n", p.Pattern)
		if p.RequiresCommentary {
			fmt.Fprintf(w, "      commentary: required\n")
		}
		for _, a := range p.Accesses {
			fmt.Fprintf(w, "      access %q <- %s\n", a.Label, describeSource(r, a))
		}
	}
}

func describeSource(r *Runner, a config.Access) string {
	if r.Config.IsMemorySource(a.Source) {
		return "working memory"
	}
	if _, err := r.Reservoirs.Load(a.Source); err != nil {
		return fmt.Sprintf("%s (MISSING)", a.Source)
	}
	return a.Source
}
