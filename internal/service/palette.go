package service

// Palette is the fixed, ordered set of category colours.
var Palette = []string{
	"#ef4444", // red
	"#f97316", // orange
	"#f59e0b", // amber
	"#eab308", // yellow
	"#84cc16", // lime
	"#22c55e", // green
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#3b82f6", // blue
	"#6366f1", // indigo
	"#a855f7", // purple
	"#ec4899", // pink
}

// pickColor prefers palette colours no category uses yet and falls back to
// the whole palette once every colour is taken.
func pickColor(rnd Random, used []string) string {
	taken := make(map[string]struct{}, len(used))
	for _, c := range used {
		taken[c] = struct{}{}
	}

	free := make([]string, 0, len(Palette))
	for _, c := range Palette {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		free = Palette
	}
	return free[rnd.IntN(len(free))]
}
