package report

import (
	"fmt"
	"io"
)

var tips = []string{
	"Use AC at 24°C or higher to save energy",
	"Unplug appliances when not in use",
	"Use LED lights instead of incandescent bulbs",
	"Regular maintenance of AC and fridge improves efficiency",
	"Use washing machine with full load to optimize energy usage",
}

// Tips returns the energy saving tips
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// WriteTips prints the tips as a bullet list
func WriteTips(w io.Writer) {
	fmt.Fprintln(w, "Energy Saving Tips")
	for _, tip := range Tips() {
		fmt.Fprintf(w, "• %s\n", tip)
	}
}
