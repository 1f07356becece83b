package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LDA #$01; STA $0200; LDA #$05; STA $0201; LDA #$08; STA $0202
var demoProgram = []byte{
	0xA9, 0x01, 0x8D, 0x00, 0x02,
	0xA9, 0x05, 0x8D, 0x01, 0x02,
	0xA9, 0x08, 0x8D, 0x02, 0x02,
}

// Load a program from a hex dump file.
func loadProgram(filepath string) ([]byte, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v: %w", filepath, err)
	}
	defer f.Close()

	program, err := parseProgram(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filepath, err)
	}

	return program, nil
}

// parseProgram reads whitespace separated hex bytes, as copied from an
// assembler's hex dump. Bytes may carry a "$" or "0x" prefix, a ';' starts a
// comment, and a leading "0600:" style address label is skipped.
func parseProgram(r io.Reader) ([]byte, error) {
	var program []byte

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}

		for i, field := range strings.Fields(line) {
			if i == 0 && strings.HasSuffix(field, ":") {
				continue
			}

			field = strings.TrimPrefix(field, "$")
			field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")

			b, err := strconv.ParseUint(field, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad byte %q: %w", lineNum, field, err)
			}
			program = append(program, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	if len(program) == 0 {
		return nil, fmt.Errorf("empty program")
	}

	return program, nil
}
