package model

// Mode selects which calendar dates a run targets.
type Mode string

const (
	ModeToday     Mode = "today"
	ModeYesterday Mode = "yesterday"
	ModeLast5Days Mode = "last_5_days"
)

// ParseMode maps a mode string to a Mode. Unrecognized values fall back
// to ModeToday; ok reports whether the input was recognized.
func ParseMode(s string) (mode Mode, ok bool) {
	switch Mode(s) {
	case ModeToday, ModeYesterday, ModeLast5Days:
		return Mode(s), true
	case "":
		return ModeToday, true
	default:
		return ModeToday, false
	}
}
