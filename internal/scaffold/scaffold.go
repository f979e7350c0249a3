// Package scaffold creates a new .aleph/ project directory with a starter
// chain, pattern files and reservoir documents.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleph-sh/aleph/internal/ux"
)

var configTemplate = `name: my-chain
model: sonnet
timeout: 15

protocols:
  - name: Extract
    pattern: Extract.md
    accesses:
      Intuition Reservoir: Intuition_Reservoir.md

  - name: Atomize
    pattern: Atomize.md
    accesses:
      Intuition Reservoir: Intuition_Reservoir.md

  - name: Reflect
    pattern: Reflect.md
    accesses:
      Newly Atomized Abstractions: working-memory
      Abstraction Theory: Abstraction_Theory.md
      Intuition Reservoir: Intuition_Reservoir.md

  - name: Integrate
    pattern: Integrate.md
    accesses:
      Reflect Protocol Output: working-memory
      Abstraction Theory Picture: Abstraction_Theory_Picture.md
      Abstraction Theory: Abstraction_Theory.md
      Intuition Reservoir: Intuition_Reservoir.md
`

var patterns = map[string]string{
	"Extract.md": `Read the user input and extract its essential claims.

List each claim on its own line. Preserve the author's framing; do not
editorialize. Ignore formatting, greetings and meta-commentary.
`,
	"Atomize.md": `Break each extracted claim into atomic abstractions.

An atomic abstraction states exactly one idea and can be judged true or
false on its own. Split compound claims; drop duplicates.
`,
	"Reflect.md": `Review the newly atomized abstractions against the accessible theory.

For each abstraction, note whether it confirms, contradicts, or extends
what the theory already holds, and say why in one sentence.
`,
	"Integrate.md": `Integrate the reflection results into a single coherent summary.

Produce a final picture that reconciles the new abstractions with the
existing theory. State unresolved tensions explicitly rather than
papering over them.
`,
}

var reservoirs = map[string]string{
	"Intuition_Reservoir.md": `# Intuition Reservoir

Working hunches and heuristics accumulated across runs. Edit freely;
every protocol that names this reservoir sees its current content.
`,
	"Abstraction_Theory.md": `# Abstraction Theory

The standing body of abstractions this chain refines. Start empty or
paste in what you already believe.
`,
	"Abstraction_Theory_Picture.md": `# Abstraction Theory Picture

A condensed, high-level view of the theory for the Integrate step.
`,
}

var gitignoreTemplate = `artifacts/
instance.md
`

// Init creates a new .aleph/ directory with a starter config, pattern files
// and reservoir documents.
func Init(targetDir string) error {
	alephDir := filepath.Join(targetDir, ".aleph")
	if _, err := os.Stat(alephDir); err == nil {
		return fmt.Errorf(".aleph directory already exists in %s", targetDir)
	}

	patternsDir := filepath.Join(alephDir, "patterns")
	reservoirDir := filepath.Join(alephDir, "reservoir")
	for _, dir := range []string{patternsDir, reservoirDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(filepath.Join(alephDir, "config.yaml"), []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}
	for name, content := range patterns {
		if err := os.WriteFile(filepath.Join(patternsDir, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("writing pattern %s: %w", name, err)
		}
	}
	for name, content := range reservoirs {
		if err := os.WriteFile(filepath.Join(reservoirDir, name), []byte(content), 0644); err != nil {
			return fmt.Errorf("writing reservoir %s: %w", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(alephDir, ".gitignore"), []byte(gitignoreTemplate), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized .aleph/ directory%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s.aleph/config.yaml%s     — chain configuration\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s.aleph/patterns/%s       — protocol instruction files\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s.aleph/reservoir/%s      — standing reference documents\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s.aleph/config.yaml%s to shape your chain\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Seed the documents in %s.aleph/reservoir/%s\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %saleph run --dry-run%s to preview\n\n", ux.Cyan, ux.Reset)

	return nil
}
