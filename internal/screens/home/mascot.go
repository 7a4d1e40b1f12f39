package home

import (
	"charm.land/lipgloss/v2"

	"github.com/homeworkgoat/goat/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default green
	MascotCelebrating                      // Gold, star eyes — on a hot streak
)

const goatIdle = `   ((    ))
    \\  //
   ┌──────┐
   │ ◉  ◉ │
   │  ──  │
  ─┤ ʋʋʋʋ ├─
   └──────┘`

const goatCelebrating = `   ((    ))
    \\  //
   ┌──────┐
   │ ★  ★ │
   │  ──  │
  ─┤ ʋʋʋʋ ├─
   └─╥══╥─┘`

// RenderMascot returns Gruff's ASCII art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := goatIdle
	fg := theme.Primary

	if variant == MascotCelebrating {
		art = goatCelebrating
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
