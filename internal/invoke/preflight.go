package invoke

import (
	"fmt"
	"os/exec"
)

// Preflight checks that the claude binary is available on PATH.
func Preflight() error {
	if _, err := exec.LookPath("claude"); err != nil {
		return fmt.Errorf("required binary 'claude' not found in PATH")
	}
	return nil
}
