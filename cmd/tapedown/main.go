package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/renameio"

	"github.com/tapedown/tapedown/internal/tpdutil"
	"github.com/tapedown/tapedown/markdown"
	"github.com/tapedown/tapedown/mdast"
)

func main() {
	var (
		verbose bool
		outPath string
	)
	flag.BoolVar(&verbose, "v", false, "print verbose (%+v) node detail")
	flag.StringVar(&outPath, "o", "", "write output atomically to this file instead of stdout")
	flag.Parse()

	logOut := tpdutil.PrefixWriter("> log: ", os.Stderr)
	defer logOut.Close()
	log.SetOutput(logOut)
	log.SetFlags(0)

	in := os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("open %s: %v", args[0], err)
		}
		defer f.Close()
		in = f
	}

	source, err := io.ReadAll(in)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	doc, final := markdown.Parse(string(source))

	if outPath != "" {
		buf := &tpdutil.ErrWriter{Writer: new(bufWriter)}
		writeTree(buf, doc.Blocks, verbose)
		if buf.Err != nil {
			log.Fatalf("render tree: %v", buf.Err)
		}
		if err := renameio.WriteFile(outPath, buf.Writer.(*bufWriter).Bytes(), 0o644); err != nil {
			log.Fatalf("write %s: %v", outPath, err)
		}
	} else {
		out := &tpdutil.ErrWriter{Writer: os.Stdout}
		writeTree(out, doc.Blocks, verbose)
		if out.Err != nil {
			log.Fatalf("write output: %v", out.Err)
		}
	}

	if !final.Tape.IsEmpty() {
		log.Printf("stopped with %d characters unconsumed", len(final.Tape))
	}
	for _, d := range final.Diagnostics() {
		log.Printf("%s", d)
	}
}

func writeTree(w io.Writer, blocks mdast.Blocks, verbose bool) {
	verb := "%v\n"
	if verbose {
		verb = "%+v\n"
	}
	for i, b := range blocks {
		fmt.Fprintf(w, "%d. ", i+1)
		fmt.Fprintf(w, verb, b)
	}
}

// bufWriter is the minimal io.Writer the -o path needs to accumulate
// output before handing it to renameio.WriteFile in one shot.
type bufWriter struct{ data []byte }

func (b *bufWriter) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *bufWriter) Bytes() []byte { return b.data }
