package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/termframe"
)

func main() {
	kb, err := termframe.OpenKeyboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "open failed: %v\n", err)
		os.Exit(1)
	}
	defer kb.Close()

	// Raw mode: \r\n for clean line starts
	fmt.Print("input-test - press keys, Escape to quit\r\n")

	for {
		ev, err := kb.ReadKey()
		if err != nil {
			fmt.Printf("read error: %v\r\n", err)
			return
		}

		fmt.Printf("key=%-12s rune=%-6q mod=%03b count=%d\r\n", ev.Key, ev.Rune, ev.Mod, ev.Count)

		if ev.Key == termframe.KeyEscape || ev.Key == termframe.KeyCtrlC {
			return
		}
	}
}
