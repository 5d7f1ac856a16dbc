// Package seqfile parses biological sequence files into per-record
// lengths. Parsing is deliberately simple and conservative: the browser
// only needs residue counts, never the sequences themselves.
package seqfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultExtensions are the file extensions recognized as FASTA content.
var DefaultExtensions = []string{".fasta", ".fa", ".fna"}

// ParseError describes malformed sequence content. It is fatal during
// catalog construction.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed sequence data at line %d: %s", e.Line, e.Reason)
}

// RecordLengths reads FASTA records from r and returns the residue count
// of each record, in file order.
//
// A record starts at a '>' header line; its length is the total number of
// non-whitespace characters on the following sequence lines. Blank lines
// are ignored. Content before the first header and headers with no
// sequence data are ParseErrors, matching the strictness of the readers
// this tool's catalogs are validated against.
func RecordLengths(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	lengths := []int{}
	lineNo := 0
	inRecord := false
	current := 0
	headerLine := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if inRecord {
				if current == 0 {
					return nil, &ParseError{Line: headerLine, Reason: "record has no sequence data"}
				}
				lengths = append(lengths, current)
			}
			inRecord = true
			current = 0
			headerLine = lineNo
			continue
		}
		if !inRecord {
			return nil, &ParseError{Line: lineNo, Reason: "sequence data before first header"}
		}
		current += len(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if inRecord {
		if current == 0 {
			return nil, &ParseError{Line: headerLine, Reason: "record has no sequence data"}
		}
		lengths = append(lengths, current)
	}
	return lengths, nil
}
