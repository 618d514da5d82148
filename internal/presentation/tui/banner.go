package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the given version string.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient from teal to amber
	s1 := termenv.String("  _              _      ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String(" | |_ __ _ _ __ (_)_ __ ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" | __/ _` | '_ \\| | '__|").Foreground(p.Color("#4ade80"))
	s4 := termenv.String(" | || (_| | |_) | | |   ").Foreground(p.Color("#a3e635"))
	s5 := termenv.String("  \\__\\__,_| .__/|_|_|   ").Foreground(p.Color("#facc15"))
	s6 := termenv.String("          |_|           ").Foreground(p.Color("#fbbf24"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println(termenv.String("  tapir " + strings.TrimSpace(version)).Faint())
	fmt.Println()
}
