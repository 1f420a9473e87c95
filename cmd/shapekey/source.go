package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	kerr "github.com/shapez-tools/shapekey/error"
	"github.com/shapez-tools/shapekey/shape"
)

type keyEntry struct {
	key string
	row int
}

// readKeys gathers the shape keys a command operates on: the command
// line arguments if any are present, otherwise one key per line from
// the source file or stdin. Blank lines and lines starting with '#'
// are skipped.
func readKeys(args []string, sourcePath string) ([]keyEntry, string, error) {
	if len(args) > 0 {
		entries := make([]keyEntry, 0, len(args))
		for _, arg := range args {
			entries = append(entries, keyEntry{
				key: arg,
			})
		}
		return entries, "", nil
	}

	var src io.Reader = os.Stdin
	sourceName := "stdin"
	if sourcePath != "" {
		f, err := os.Open(sourcePath)
		if err != nil {
			return nil, "", fmt.Errorf("Cannot open the source file %s: %w", sourcePath, err)
		}
		defer f.Close()
		src = f
		sourceName = sourcePath
	}

	var entries []keyEntry
	s := bufio.NewScanner(src)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, keyEntry{
			key: line,
			row: row,
		})
	}
	if err := s.Err(); err != nil {
		return nil, "", err
	}
	return entries, sourceName, nil
}

// decorate converts the diagnostics of a failed parse into KeyErrors
// carrying the source context of the offending key.
func decorate(err error, sourceName, key string, row int) error {
	synErrs, ok := err.(shape.ParseErrors)
	if !ok {
		return err
	}
	keyErrs := make(kerr.KeyErrors, 0, len(synErrs))
	for _, synErr := range synErrs {
		keyErrs = append(keyErrs, &kerr.KeyError{
			Cause:      synErr,
			SourceName: sourceName,
			Row:        row,
			Key:        key,
			Start:      synErr.Start,
			End:        synErr.End,
		})
	}
	return keyErrs
}
