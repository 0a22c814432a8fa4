// Command hapticinfo prints the DRV2667 RAM layout for a list of effects.
//
// Usage:
//
//	hapticinfo [flags] effect...
//
// Each effect is d:<bytes> for a Direct waveform or s:<records> for a
// synthesizer sequence.
//
// Examples:
//
//	hapticinfo d:3 s:2
//	hapticinfo -repeat 0 s:4 s:4 d:800
//	hapticinfo -max 8 -elements d:300
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-haptic/ram"
)

func main() {
	repeat := flag.Uint("repeat", 1, "repeat count for every effect (0 repeats forever)")
	maxEffects := flag.Int("max", ram.DefaultMaxEffects, "effect-table capacity")
	elements := flag.Bool("elements", false, "also print the address of every element")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hapticinfo [flags] effect...\n\n")
		fmt.Fprintf(os.Stderr, "Prints the DRV2667 waveform RAM layout for a list of effects.\n")
		fmt.Fprintf(os.Stderr, "An effect is d:<bytes> (direct) or s:<records> (synthesis).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hapticinfo d:3 s:2\n")
		fmt.Fprintf(os.Stderr, "  hapticinfo -repeat 0 s:4 s:4 d:800\n")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *repeat > 255 {
		fmt.Fprintf(os.Stderr, "error: repeat must be in [0, 255]: %d\n", *repeat)
		os.Exit(1)
	}

	l := ram.New(ram.WithMaxEffects(*maxEffects))
	for _, arg := range flag.Args() {
		if l.IsAtCapacity() {
			fmt.Fprintf(os.Stderr, "warning: effect table full (%d), ignoring %q and later effects\n", l.MaxEffects(), arg)
			break
		}
		c, err := parseEffect(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		c.SetRepeat(uint8(*repeat))
		l.Append(c)
	}

	printLayout(os.Stdout, os.Stderr, l, *elements)
}

func parseEffect(arg string) (ram.Chunk, error) {
	kind, count, ok := strings.Cut(strings.ToLower(strings.TrimSpace(arg)), ":")
	if !ok {
		return ram.Chunk{}, fmt.Errorf("effect %q: want d:<bytes> or s:<records>", arg)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n <= 0 {
		return ram.Chunk{}, fmt.Errorf("effect %q: count must be a positive integer", arg)
	}

	switch kind {
	case "d", "direct":
		return ram.NewDirect(make([]byte, n)), nil
	case "s", "synth", "synthesis":
		return ram.NewSynthesis(make([]ram.Record, n)...), nil
	default:
		return ram.Chunk{}, fmt.Errorf("effect %q: unknown kind %q", arg, kind)
	}
}

func printLayout(out, errOut io.Writer, l *ram.Layout, elements bool) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "header size: %d bytes, %d/%d effects\n\n", l.HeaderByteCount(), l.Len(), l.MaxEffects()); err != nil {
		_, _ = fmt.Fprintf(errOut, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "#\tMode\tElements\tHeader\tStart\tStop\tPage\tRecord\n"); err != nil {
		_, _ = fmt.Fprintf(errOut, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-\t----\t--------\t------\t-----\t----\t----\t------\n"); err != nil {
		_, _ = fmt.Fprintf(errOut, "error: failed to write output header: %v\n", err)
		return
	}

	for i := 0; i < l.Len(); i++ {
		c := l.Chunk(i)
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t0x%03x\t0x%03x\t0x%03x\t0x%02x\t% x\n",
			i,
			c.Mode(),
			c.Len(),
			l.HeaderAddr(i),
			l.EffectStartAddr(i),
			l.EffectStopAddr(i),
			l.PageOf(i),
			l.HeaderRecord(i),
		); err != nil {
			_, _ = fmt.Fprintf(errOut, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if elements {
		if _, err := fmt.Fprintf(tw, "\n#\tElement\tAddress\tPage\tLow\n"); err != nil {
			_, _ = fmt.Fprintf(errOut, "error: failed to write output header: %v\n", err)
			return
		}
		for i := 0; i < l.Len(); i++ {
			for j := 0; j < l.Chunk(i).Len(); j++ {
				page, _ := ram.Page(l.ElementAddr(i, j))
				if _, err := fmt.Fprintf(tw, "%d\t%d\t0x%03x\t0x%02x\t0x%02x\n",
					i, j, l.ElementAddr(i, j), page, l.ElementAddress(i, j)); err != nil {
					_, _ = fmt.Fprintf(errOut, "error: failed to write output row: %v\n", err)
					return
				}
			}
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(errOut, "error: failed to flush output: %v\n", err)
	}
	if l.IsAtCapacity() {
		fmt.Fprintf(errOut, "warning: effect table at capacity (%d)\n", l.MaxEffects())
	}
}
