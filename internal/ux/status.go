package ux

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleph-sh/aleph/internal/state"
)

// RenderStatus prints the full status display for the most recent run.
func RenderStatus(report *state.Report, artifactsDir string) {
	fmt.Printf("%sRun:%s     %s\n", Bold, Reset, report.RunID)
	switch report.Status {
	case state.StatusCompleted:
		fmt.Printf("%sStatus:%s  %s%scompleted%s\n", Bold, Reset, Green, Bold, Reset)
	case state.StatusFailed:
		fmt.Printf("%sStatus:%s  %s%sfailed%s (%d step(s))\n", Bold, Reset, Red, Bold, Reset, report.FailedCount())
	default:
		fmt.Printf("%sStatus:%s  %s\n", Bold, Reset, report.Status)
	}
	fmt.Printf("%sStarted:%s %s\n", Bold, Reset, report.Started.Format("2006-01-02 15:04:05"))

	fmt.Printf("\n%sSteps:%s\n", Bold, Reset)
	for i, step := range report.Steps {
		switch {
		case step.Skipped:
			fmt.Printf("  %s%d%s  %-20s %sskipped%s\n", Dim, i+1, Reset, step.Name, Dim, Reset)
		case step.Err != "":
			fmt.Printf("  %s%d%s  %-20s %sfailed%s  %s\n", Dim, i+1, Reset, step.Name, Red, Reset, dimDuration(step.Duration))
			fmt.Printf("       %s%s%s\n", Dim, step.Err, Reset)
		default:
			fmt.Printf("  %s%d%s  %-20s %sdone%s  %s\n", Dim, i+1, Reset, step.Name, Green, Reset, dimDuration(step.Duration))
		}
	}

	fmt.Printf("\n%sArtifacts:%s\n", Bold, Reset)
	entries, err := os.ReadDir(artifactsDir)
	if err != nil || len(entries) == 0 {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			subEntries, _ := os.ReadDir(filepath.Join(artifactsDir, e.Name()))
			if len(subEntries) > 0 {
				first := subEntries[0].Name()
				last := subEntries[len(subEntries)-1].Name()
				if first == last {
					fmt.Printf("  %s/%s/%s\n", artifactsDir, e.Name(), first)
				} else {
					fmt.Printf("  %s/%s/%s .. %s\n", artifactsDir, e.Name(), first, last)
				}
			}
		} else {
			fmt.Printf("  %s/%s\n", artifactsDir, e.Name())
		}
	}
	fmt.Println()
}

func dimDuration(d string) string {
	if d == "" {
		return ""
	}
	return fmt.Sprintf("%s(%s)%s", Dim, d, Reset)
}
