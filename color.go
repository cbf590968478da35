package termframe

// Color is one entry of the closed terminal palette. The zero value is
// ColorDefault, the terminal's own default for the respective plane.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// colorNames maps palette entries to canonical string names
var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorBlack:         "black",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightBlack:   "bright_black",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
}

func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "invalid"
}

// Foreground is a palette color tagged for the foreground plane.
// Foreground and Background are distinct types on purpose: a value of one
// never satisfies an API expecting the other, so a background cannot be
// set where a foreground was intended.
type Foreground Color

// Background is a palette color tagged for the background plane.
type Background Color

// Fg tags a palette color as a foreground
func Fg(c Color) Foreground { return Foreground(c) }

// Bg tags a palette color as a background
func Bg(c Color) Background { return Background(c) }

func (f Foreground) String() string { return "fg:" + Color(f).String() }
func (b Background) String() string { return "bg:" + Color(b).String() }

// sgr returns the SGR parameter for the foreground plane (39, 30-37, 90-97)
func (f Foreground) sgr() int {
	c := Color(f)
	switch {
	case c == ColorDefault:
		return 39
	case c <= ColorWhite:
		return 30 + int(c-ColorBlack)
	case c <= ColorBrightWhite:
		return 90 + int(c-ColorBrightBlack)
	}
	return 39
}

// sgr returns the SGR parameter for the background plane (49, 40-47, 100-107)
func (b Background) sgr() int {
	c := Color(b)
	switch {
	case c == ColorDefault:
		return 49
	case c <= ColorWhite:
		return 40 + int(c-ColorBlack)
	case c <= ColorBrightWhite:
		return 100 + int(c-ColorBrightBlack)
	}
	return 49
}
