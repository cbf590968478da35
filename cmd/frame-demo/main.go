package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termframe"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	width         = kingpin.Flag("width", "Frame width in columns, 0 = terminal width").Default("0").Short('w').Int()
	height        = kingpin.Flag("height", "Frame height in rows, 0 = terminal height").Default("0").Short('H').Int()
	cellAddressed = kingpin.Flag("cell-addressed", "Use the cell-addressed renderer instead of run-based").Short('c').Bool()
)

func main() {
	kingpin.Parse()

	var r termframe.Renderer = termframe.NewRunRenderer(os.Stdout)
	if *cellAddressed {
		r = termframe.NewCellRenderer(os.Stdout)
	}

	con, err := termframe.Open(*width, *height, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
		os.Exit(1)
	}
	defer con.Close()

	defer func() {
		if p := recover(); p != nil {
			termframe.EmergencyRestore(os.Stdout)
			panic(p)
		}
	}()

	f := con.Frame()
	kb := con.Keyboard()

	drawChrome(f)
	f.Print()

	count := 0
	for {
		ev, err := kb.ReadKey()
		if err != nil {
			return
		}

		switch ev.Key {
		case termframe.KeyEscape, termframe.KeyCtrlC:
			return
		case termframe.KeyCtrlL:
			// Force a full repaint: everything non-default re-renders
			f.Flush()
		case termframe.KeyRune:
			if ev.Rune == 'c' {
				f.Clear()
				drawChrome(f)
			}
		}

		count++
		f.Write(2, 4,
			termframe.Fg(termframe.ColorBrightYellow),
			termframe.Text(fmt.Sprintf("last key: %-12s rune: %-4q mods: %03b count: %d  ", ev.Key, ev.Rune, ev.Mod, count)))
		f.Print()
	}
}

func drawChrome(f *termframe.Frame) {
	f.Write(2, 1,
		termframe.Fg(termframe.ColorBrightWhite), termframe.Bg(termframe.ColorBlue),
		termframe.Text(" frame-demo "),
		termframe.Bg(termframe.ColorDefault), termframe.Fg(termframe.ColorDefault),
		termframe.Text("  press keys, 'c' clears, Ctrl+L repaints, Escape quits"))

	// One swatch per palette entry, foreground on background
	for c := termframe.ColorBlack; c <= termframe.ColorBrightWhite; c++ {
		f.Write(2+int(c-termframe.ColorBlack)*2, 2,
			termframe.Fg(c), termframe.Text("■"))
		f.Write(2+int(c-termframe.ColorBlack)*2, 3,
			termframe.Bg(c), termframe.Text(" "))
	}
}
