// Package chain drives one sequential execution of the configured protocols
// against a single user input and working memory.
package chain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aleph-sh/aleph/internal/config"
	"github.com/aleph-sh/aleph/internal/invoke"
	"github.com/aleph-sh/aleph/internal/memory"
	"github.com/aleph-sh/aleph/internal/reservoir"
	"github.com/aleph-sh/aleph/internal/state"
	"github.com/aleph-sh/aleph/internal/ux"
)

// CommentaryFunc collects free-text commentary for a protocol before its
// prompt is built. It may block on user interaction.
type CommentaryFunc func(ctx context.Context, protocolName string) (string, error)

// Runner executes the protocol chain. It owns the working memory for the
// duration of one run; concurrent chains over the same memory file are not
// supported.
type Runner struct {
	Config     *config.Config
	Memory     *memory.Log
	Reservoirs *reservoir.Dir
	Invoker    invoke.Invoker
	Commentary CommentaryFunc

	// ArtifactsDir enables saving the run report, assembled prompts and
	// step logs when non-empty.
	ArtifactsDir string
}

// Run resets the working memory with the user input, then executes every
// protocol in declared order. A step's failure is recorded in the report and
// never aborts the remaining steps; the returned error covers only failures
// that prevent the chain from starting.
func (r *Runner) Run(ctx context.Context, userInput string) (*state.Report, error) {
	if r.ArtifactsDir != "" {
		if err := state.EnsureDir(r.ArtifactsDir); err != nil {
			return nil, err
		}
	}
	if err := r.Memory.Reset(userInput); err != nil {
		return nil, fmt.Errorf("resetting working memory: %w", err)
	}

	report := &state.Report{
		RunID:   uuid.NewString(),
		Input:   userInput,
		Status:  state.StatusCompleted,
		Started: time.Now(),
	}

	total := len(r.Config.Protocols)
	for i := range r.Config.Protocols {
		p := &r.Config.Protocols[i]

		if !p.Included {
			ux.StepSkip(i, p.Name)
			report.Steps = append(report.Steps, state.StepResult{Name: p.Name, Skipped: true})
			continue
		}

		ux.StepHeader(i, total, p.Name)
		start := time.Now()
		output, err := r.runStep(ctx, i, p, userInput)
		duration := formatDuration(time.Since(start))

		if err != nil {
			ux.StepFail(i, p.Name, err.Error())
			report.Steps = append(report.Steps, state.StepResult{
				Name:     p.Name,
				Err:      err.Error(),
				Duration: duration,
			})
			continue
		}

		ux.StepComplete(i, time.Since(start))
		report.Steps = append(report.Steps, state.StepResult{
			Name:     p.Name,
			Output:   output,
			Duration: duration,
		})
	}

	if report.FailedCount() > 0 {
		report.Status = state.StatusFailed
	}
	if r.ArtifactsDir != "" {
		if err := report.Save(r.ArtifactsDir); err != nil {
			ux.Warn("failed to save report: %v", err)
		}
	}
	ux.ChainComplete(total, report.FailedCount())
	return report, nil
}

// runStep performs commentary collection, prompt assembly, model invocation
// and the memory append for one protocol. Any returned error is absorbed by
// Run as that step's failure.
func (r *Runner) runStep(ctx context.Context, idx int, p *config.Protocol, userInput string) (string, error) {
	commentary := ""
	if p.RequiresCommentary {
		if r.Commentary == nil {
			return "", fmt.Errorf("protocol %q requires commentary but no collector is configured", p.Name)
		}
		c, err := r.Commentary(ctx, p.Name)
		if err != nil {
			return "", fmt.Errorf("collecting commentary: %w", err)
		}
		commentary = c
	}

	prompt, err := r.assemblePrompt(p, userInput, commentary)
	if err != nil {
		return "", err
	}
	if r.ArtifactsDir != "" {
		if err := state.WriteFileAtomic(state.PromptPath(r.ArtifactsDir, idx), []byte(prompt), 0644); err != nil {
			ux.Warn("failed to save prompt for %q: %v", p.Name, err)
		}
	}

	response, err := r.Invoker.Invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("model invocation: %w", err)
	}
	response = strings.TrimSpace(response)

	if r.ArtifactsDir != "" {
		if err := state.WriteFileAtomic(state.LogPath(r.ArtifactsDir, idx), []byte(response), 0644); err != nil {
			ux.Warn("failed to save log for %q: %v", p.Name, err)
		}
	}

	if err := r.Memory.Append(p.Name+" Output", response); err != nil {
		return "", fmt.Errorf("appending to working memory: %w", err)
	}
	return response, nil
}

// assemblePrompt builds the full prompt for a protocol in fixed order:
// name header, instructions, access contexts, optional commentary, user
// input, and the current working-memory content. Access bindings resolve in
// declared order; an unresolvable reservoir logs a warning and its
// subsection is omitted.
func (r *Runner) assemblePrompt(p *config.Protocol, userInput, commentary string) (string, error) {
	var accessParts []string
	for _, a := range p.Accesses {
		if r.Config.IsMemorySource(a.Source) {
			content, err := r.Memory.Read()
			if err != nil {
				ux.Warn("could not read working memory for access %q: %v", a.Label, err)
				continue
			}
			accessParts = append(accessParts, fmt.Sprintf("### %s (Working Memory):\n%s", a.Label, content))
			continue
		}
		content, err := r.Reservoirs.Load(a.Source)
		if err != nil {
			ux.Warn("could not load reservoir %q from file %q: %v", a.Label, a.Source, err)
			continue
		}
		accessParts = append(accessParts, fmt.Sprintf("### %s:\n%s", a.Label, content))
	}
	accessContext := strings.Join(accessParts, "\n\n")

	commentarySection := ""
	if commentary != "" {
		commentarySection = fmt.Sprintf("\n\nCommentary for %s:\n%s", p.Name, commentary)
	}

	// Re-read so the instance section reflects state as of just before this
	// step's own output is appended.
	instance, err := r.Memory.Read()
	if err != nil {
		return "", fmt.Errorf("reading working memory: %w", err)
	}

	return fmt.Sprintf(
		"Protocol: %s\nInstructions:\n%s\n\nAccess Contexts:\n%s\n%s\n\nUser Input:\n%s\n\nCurrent Instance Context:\n%s\n",
		p.Name, p.Instructions, accessContext, commentarySection, userInput, instance,
	), nil
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
