// Outline prints the slides of a deck with the fragment that opens each one.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/pagescroll/internal/deck"
	"github.com/llehouerou/pagescroll/internal/slides"
)

func main() {
	class := flag.String("class", slides.DefaultClass, "Slide class to list")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: outline [-class name] DECK.md")
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read deck: %v", err)
	}

	all := slides.Parse(data)
	if err := writeOutline(os.Stdout, all, *class); err != nil {
		log.Fatalf("Failed to write outline: %v", err)
	}
	log.Printf("%s: %d slides, %d with class %q (%s)",
		path, len(all), len(slides.WithClass(all, *class)), *class, humanize.IBytes(uint64(len(data))))
}

// writeOutline lists the slides carrying class, one per line.
func writeOutline(w io.Writer, all []slides.Slide, class string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range slides.WithClass(all, class) {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(tw, "%d\t#%s\t%s\t%d lines\n", i+1, deck.FormatFragment(class, i), title, len(s.Lines))
	}
	return tw.Flush()
}
