package ux

import (
	"fmt"
	"os"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// StepHeader prints a timestamped protocol step header.
func StepHeader(index, total int, name string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sProtocol %d/%d: %s%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, name, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// StepComplete prints a step completion message.
func StepComplete(index int, duration time.Duration) {
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60
	fmt.Printf("%s[%s]%s  %s✓ Protocol %d complete (%dm %02ds)%s\n",
		Dim, timestamp(), Reset, Green, index+1, m, s, Reset)
}

// StepFail prints a step failure message.
func StepFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ Protocol %d (%s) failed: %s%s\n",
		Dim, timestamp(), Reset, Red, index+1, name, errMsg, Reset)
}

// StepSkip prints a step skip message (included flag off).
func StepSkip(index int, name string) {
	fmt.Printf("%s[%s]%s  %s– Protocol %d (%s) skipped (not included)%s\n",
		Dim, timestamp(), Reset, Dim, index+1, name, Reset)
}

// Warn prints a warning to stderr.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// ChainComplete prints the final chain summary.
func ChainComplete(total, failed int) {
	if failed > 0 {
		fmt.Printf("\n%s[%s]%s  %s%s══ Chain complete: %d/%d protocols failed ══%s\n\n",
			Dim, timestamp(), Reset, Bold, Yellow, failed, total, Reset)
		return
	}
	fmt.Printf("\n%s[%s]%s  %s%s══ All %d protocols complete ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, total, Reset)
}
