// Command dictool inspects, converts, and compacts persisted dictionary
// files (JSON, YAML, or protobuf record sequences).
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/enginekit/containers/codec"
	"github.com/enginekit/containers/dict"
)

func main() {
	var (
		in      = flag.String("in", "", "Path to a persisted dictionary file (required)")
		from    = flag.String("from", "", "Input format: "+strings.Join(codec.Names(), ", ")+" (default: by extension)")
		out     = flag.String("out", "", "Write the dictionary to this path (optional)")
		to      = flag.String("to", "", "Output format (default: by extension of -out)")
		compact = flag.Bool("compact", false, "Collapse duplicate keys, last write wins")
		verbose = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Usage: dictool -in <file> [-out <file>] [-compact]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	inCodec, err := resolveCodec(*from, *in)
	if err != nil {
		log.Fatalf("Failed to resolve input format: %v", err)
	}
	logger.Debug("input codec resolved", "codec", inCodec.Name(), "path", *in)

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	records, err := inCodec.Decode(data)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *in, err)
	}

	d := dict.FromEntries(records)
	distinct := d.Len()
	duplicates := len(records) - distinct

	fmt.Printf("%s: %d records, %d distinct keys", *in, len(records), distinct)
	if duplicates > 0 {
		fmt.Printf(", %d duplicate(s): %s", duplicates, strings.Join(duplicateKeys(records), ", "))
	}
	fmt.Println()

	if *compact {
		records = d.BeforeSave()
		logger.Debug("compacted duplicates", "records", len(records))
	}

	if *out == "" {
		return
	}

	outCodec, err := resolveCodec(*to, *out)
	if err != nil {
		log.Fatalf("Failed to resolve output format: %v", err)
	}

	encoded, err := outCodec.Encode(records)
	if err != nil {
		log.Fatalf("Failed to encode as %s: %v", outCodec.Name(), err)
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	logger.Info("wrote dictionary", "path", *out, "codec", outCodec.Name(), "records", len(records))
}

// resolveCodec picks a codec by explicit name, falling back to the path's
// file extension.
func resolveCodec(name, path string) (codec.Codec, error) {
	if name != "" {
		c, ok := codec.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q (have: %s)", name, strings.Join(codec.Names(), ", "))
		}
		return c, nil
	}

	c, ok := codec.ByExtension(path)
	if !ok {
		return nil, fmt.Errorf("cannot infer format from %q, pass -from/-to", path)
	}
	return c, nil
}

func duplicateKeys(records []codec.Record) []string {
	counts := make(map[string]int, len(records))
	var dups []string
	for _, r := range records {
		counts[r.Key]++
		if counts[r.Key] == 2 {
			dups = append(dups, r.Key)
		}
	}
	return dups
}
