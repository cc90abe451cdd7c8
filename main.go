package main

import (
	"fmt"
	"log"
	"os"
)

const (
	exitOK        = 0
	exitNoDisplay = 1
	exitInit      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	d, err := openDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arctic-nord-dock: %v\n", err)
		return exitNoDisplay
	}
	defer d.close()

	entries := loadPalette()
	layout := ComputeLayout(int(d.screen.HeightInPixels), len(entries), dockPadding)

	if err := d.initDock(layout); err != nil {
		fmt.Fprintf(os.Stderr, "arctic-nord-dock: %v\n", err)
		return exitInit
	}

	clip := NewClipboard(d.selectionAtoms(), d)
	app := NewApp(layout, entries, clip, d.dockSurface(), d)

	// One blocking wait drives all work. Termination happens only through
	// the WM_DELETE_WINDOW protocol or a dead connection.
	for {
		ev, xerr := d.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			fmt.Fprintln(os.Stderr, "arctic-nord-dock: display connection closed")
			return exitNoDisplay
		}
		if xerr != nil {
			log.Printf("x11: %v", xerr)
			continue
		}
		if app.dispatch(ev, d.atoms.wmDelete) {
			return exitOK
		}
	}
}
