package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/jumpstart/internal/platform"
)

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: jumpstart monitors")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List active displays with their usable areas. Display 1 is the")
		fmt.Fprintln(os.Stderr, "primary monitor; config display indices refer to this ordering.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		fs.Usage()
		return 2
	}

	backend, err := platform.NewX11Backend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Close()

	monitors, err := backend.Monitors()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, m := range monitors {
		fmt.Printf("%d  %-12s usable %dx%d at (%d,%d)\n",
			m.Index, m.Name, m.Usable.Width, m.Usable.Height, m.Usable.X, m.Usable.Y)
	}
	return 0
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: jumpstart windows")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List current titled windows. Useful for checking what title")
		fmt.Fprintln(os.Stderr, "substring a config entry's name would match.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "windows takes no arguments")
		fs.Usage()
		return 2
	}

	backend, err := platform.NewX11Backend()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer backend.Close()

	windows, err := backend.ListWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, w := range windows {
		fmt.Printf("0x%08x  %s\n", w.ID, w.Title)
	}
	return 0
}
