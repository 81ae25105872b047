package glyph

import "strings"

// Render draws the patterns side by side, one string per row:
//
//	  -     -     -     -
//	 | |   | |   | |   | |
//	  -     -     -     -
//	 | |   | |   | |   | |
//	  -  .  -  .  -  .  -  .
func Render(patterns ...Pattern) []string {
	rows := make([]strings.Builder, 5)
	bar := func(b *strings.Builder, on bool, wide bool) {
		s := "      "
		if on {
			s = "  -   "
		}
		if !wide {
			s = s[:5]
		}
		b.WriteString(s)
	}
	sides := func(b *strings.Builder, left, right bool) {
		if left {
			b.WriteString(" |")
		} else {
			b.WriteString("  ")
		}
		if right {
			b.WriteString(" |  ")
		} else {
			b.WriteString("    ")
		}
	}

	for _, pat := range patterns {
		bar(&rows[0], pat[SegTop], true)
		sides(&rows[1], pat[SegTopL], pat[SegTopR])
		bar(&rows[2], pat[SegMid], true)
		sides(&rows[3], pat[SegBotL], pat[SegBotR])
		// bottom row shares its last column with the decimal point
		bar(&rows[4], pat[SegBot], false)
		if pat[SegDecimal] {
			rows[4].WriteString(".")
		} else {
			rows[4].WriteString(" ")
		}
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return lines
}
