package domain

import "fmt"

// Screen identifies the active view. Any screen may follow any other.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSessionPre
	ScreenSessionAttempt
	ScreenSessionPost
	ScreenSessionRest
	ScreenSessionSummary
	ScreenHistory
	ScreenSettings
	screenCount
)

var screenNames = [screenCount]string{
	"home",
	"session-pre",
	"session-attempt",
	"session-post",
	"session-rest",
	"session-summary",
	"history",
	"settings",
}

func (s Screen) String() string {
	if s < 0 || s >= screenCount {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

func (s Screen) Valid() bool {
	return s >= 0 && s < screenCount
}

func ParseScreen(name string) (Screen, bool) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), true
		}
	}
	return ScreenHome, false
}

func Screens() []Screen {
	out := make([]Screen, 0, screenCount)
	for s := Screen(0); s < screenCount; s++ {
		out = append(out, s)
	}
	return out
}
