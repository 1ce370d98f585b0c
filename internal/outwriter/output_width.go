package outwriter

import (
	"os"

	"github.com/huangsam/cardstats/internal/contract"
	"golang.org/x/term"
)

// GetTerminalWidth returns the --width override, else the detected terminal
// width, else 80.
func GetTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Fallback to conservative default if terminal size can't be detected
		return 80
	}
	return detectedWidth
}

// getMaxBarWidth is the room left for the hour histogram bars after the
// Hour, Count and Share columns.
func getMaxBarWidth(cfg *contract.Config) int {
	available := GetTerminalWidth(cfg) - 40
	return min(max(available, 10), 60)
}

// getMaxMessageWidth is the room left for recent activity messages.
func getMaxMessageWidth(cfg *contract.Config) int {
	available := GetTerminalWidth(cfg) - 60
	return min(max(available, 15), 70)
}

// getMaxPathWidth is the room for an SVG path printed under a table.
func getMaxPathWidth(cfg *contract.Config) int {
	return max(GetTerminalWidth(cfg)-14, 20)
}
