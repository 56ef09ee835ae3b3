package ux

import (
	"fmt"
	"os"
	"strings"
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

// SkipWarning prints a per-block skip notice to stderr. Skipped blocks
// never abort a conversion, so these are warnings, not errors.
func SkipWarning(offset int, reason string) {
	fmt.Fprintf(os.Stderr, "%swarning:%s code block at offset %d skipped: %s\n", Yellow, Reset, offset, reason)
}

// ConvertSummary prints where the generated source went and what it
// contains.
func ConvertSummary(out string, components, skipped int) {
	fmt.Fprintf(os.Stderr, "%s✓ wrote %s%s %s(%d components", Green, out, Reset, Dim, components)
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, ", %d skipped", skipped)
	}
	fmt.Fprintf(os.Stderr, ")%s\n", Reset)
}

// InitSuccess prints the post-init next steps.
func InitSuccess(files []string) {
	fmt.Printf("\n%s%s✓ Initialized dashdown project%s\n\n", Bold, Green, Reset)
	fmt.Printf("  Created:\n")
	for _, f := range files {
		fmt.Printf("    %s%s%s\n", Cyan, f, Reset)
	}
	fmt.Printf("\n  Next steps:\n")
	fmt.Printf("    1. Edit %sexample.md%s and the sample app under %sapps/%s\n", Cyan, Reset, Cyan, Reset)
	fmt.Printf("    2. Run %sdashdown convert example.md -o app.go%s\n", Cyan, Reset)
	fmt.Printf("    3. Run %sdashdown preview example.md%s for a quick look\n\n", Cyan, Reset)
}

// Errorf prints a fatal error line in the CLI's standard shape.
func Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%serror:%s %s\n", Red, Reset, strings.TrimRight(msg, "\n"))
}
