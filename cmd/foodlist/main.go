package main

import (
	"os"
	"strings"

	"foodlist-cli/internal/cli"
)

func isItemArg(s string) bool {
	s = strings.TrimSpace(s)
	return !strings.HasPrefix(s, "-") && strings.Contains(s, "=")
}

// rewriteInlineItemArgs lets `foodlist Rice=12.50 Dal=8` stand for
// `foodlist render --item Rice=12.50 --item Dal=8`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`foodlist --pretty Rice=1`),
// so we look for the first positional token rather than argv[1].
func rewriteInlineItemArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--format":    true,
		"--currency":  true,
		"--log-level": true,
		"--log-file":  true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if !isItemArg(a) {
			return argv
		}
		out := make([]string, 0, 2*len(argv))
		out = append(out, argv[:i]...)
		out = append(out, "render")
		for _, rest := range argv[i:] {
			if isItemArg(rest) {
				out = append(out, "--item", rest)
				continue
			}
			out = append(out, rest)
		}
		return out
	}

	return argv
}

func main() {
	os.Args = rewriteInlineItemArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
