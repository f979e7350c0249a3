// Package doctor diagnoses a failed chain run by gathering the failed
// step's context from artifacts and asking the model what went wrong.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aleph-sh/aleph/internal/config"
	"github.com/aleph-sh/aleph/internal/invoke"
	"github.com/aleph-sh/aleph/internal/state"
	"github.com/aleph-sh/aleph/internal/ux"
)

const maxLogLines = 200

const diagPrompt = `You are diagnosing a failed protocol step in a prompt chain. Analyze the context below and provide a concise diagnosis.

## Failed Protocol Config
%s

## Recorded Error
%s

## Step Log Output (last %d lines)
%s
%s
Instructions:
1. Identify what went wrong from the recorded error and log output.
2. Classify this as a CHAIN problem (config, reservoir wiring, pattern instructions) or a MODEL problem (timeout, refusal, malformed output).
3. Suggest specific fixes to the config, pattern file, or reservoirs.
4. Note that re-running 'aleph run' replays the whole chain from the start.

Be direct and concise. Focus on actionable advice.`

// Run gathers failure context for the first failed step of the last run
// and sends it to the model for diagnosis.
func Run(ctx context.Context, artifactsDir string, cfg *config.Config, report *state.Report, inv invoke.Invoker) error {
	if report.Status != state.StatusFailed {
		fmt.Println("No failed run to diagnose.")
		return nil
	}

	idx, step := firstFailed(report)
	if step == nil {
		fmt.Println("No failed run to diagnose.")
		return nil
	}

	protocolConfig := "(protocol not found in current config)"
	if pi := cfg.ProtocolIndex(step.Name); pi >= 0 {
		protocolConfig = gatherProtocolConfig(&cfg.Protocols[pi])
	}
	log := gatherLog(artifactsDir, idx)
	prompt := gatherPrompt(artifactsDir, idx)

	diagText := buildPrompt(protocolConfig, step.Err, log, prompt)

	fmt.Printf("\n%s%s══ Doctor: diagnosing step %d/%d (%s) ══%s\n\n",
		ux.Bold, ux.Cyan, idx+1, len(report.Steps), step.Name, ux.Reset)

	if _, err := inv.Invoke(ctx, diagText); err != nil {
		return fmt.Errorf("failed to run diagnosis: %w", err)
	}
	fmt.Println()
	return nil
}

func firstFailed(report *state.Report) (int, *state.StepResult) {
	for i := range report.Steps {
		if report.Steps[i].Err != "" {
			return i, &report.Steps[i]
		}
	}
	return -1, nil
}

func buildPrompt(protocolConfig, stepErr, log, prompt string) string {
	promptSection := ""
	if prompt != "" {
		promptSection = fmt.Sprintf("\n## Assembled Prompt\n%s\n", prompt)
	}
	if stepErr == "" {
		stepErr = "(none recorded)"
	}
	return fmt.Sprintf(diagPrompt, protocolConfig, stepErr, maxLogLines, log, promptSection)
}

func gatherProtocolConfig(p *config.Protocol) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Name: %s", p.Name))
	parts = append(parts, fmt.Sprintf("Pattern: %s", p.Pattern))
	if p.RequiresCommentary {
		parts = append(parts, "Requires commentary: yes")
	}
	for _, a := range p.Accesses {
		parts = append(parts, fmt.Sprintf("Access: %s <- %s", a.Label, a.Source))
	}
	return strings.Join(parts, "\n")
}

func gatherLog(artifactsDir string, stepIndex int) string {
	data, err := os.ReadFile(state.LogPath(artifactsDir, stepIndex))
	if err != nil {
		return "(no log file found)"
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
		return fmt.Sprintf("... (truncated to last %d lines)\n%s", maxLogLines, strings.Join(lines, "\n"))
	}
	return string(data)
}

func gatherPrompt(artifactsDir string, stepIndex int) string {
	data, err := os.ReadFile(state.PromptPath(artifactsDir, stepIndex))
	if err != nil {
		return "(no assembled prompt found)"
	}
	return string(data)
}
