package model

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	deadChar  = '0'
	aliveChar = '1'

	// maxLineBytes bounds a single persisted row
	maxLineBytes = 16 << 20
)

// Encode writes g in the canonical text format: one line of '0'/'1' per row,
// each line terminated by a single '\n'.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.cols+1)
	line[g.cols] = '\n'
	for r := range g.rows {
		for c := range g.cols {
			line[c] = deadChar
			if g.cells[r][c] {
				line[c] = aliveChar
			}
		}
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "[Encode] failed to write row %d", r)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Encode] failed to flush")
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical format.
func (g *Grid) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(g.rows * (g.cols + 1))
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a grid in the canonical text format. Dimensions come from the
// content. The final newline is optional and a carriage return before a newline
// is ignored. Empty input, ragged rows and characters other than '0' and '1'
// fail with ErrFormat.
func Decode(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var cells [][]bool
	for scanner.Scan() {
		line := scanner.Bytes()
		lineNo := len(cells) + 1
		if len(line) == 0 {
			return nil, errors.Wrapf(ErrFormat, "[Decode] line %d is empty", lineNo)
		}
		if len(cells) > 0 && len(line) != len(cells[0]) {
			return nil, errors.Wrapf(ErrFormat, "[Decode] line %d has %d cells, expected %d",
				lineNo, len(line), len(cells[0]))
		}

		row := make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case aliveChar:
				row[c] = true
			case deadChar:
			default:
				return nil, errors.Wrapf(ErrFormat, "[Decode] line %d column %d: illegal character %q",
					lineNo, c+1, ch)
			}
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to read grid")
	}
	if len(cells) == 0 {
		return nil, errors.Wrap(ErrFormat, "[Decode] empty input")
	}

	return &Grid{
		rows:  len(cells),
		cols:  len(cells[0]),
		cells: cells,
	}, nil
}

// ParseGrid parses text produced by MarshalText or Encode.
func ParseGrid(text []byte) (*Grid, error) {
	return Decode(bytes.NewReader(text))
}

// SaveFile writes g to filename, replacing any existing file
func SaveFile(filename string, g *Grid) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveFile] failed to close file: %+v", filename)
		}
	}()

	if err = Encode(f, g); err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to write file: %+v", filename)
	}
	return nil
}

// LoadFile reads a grid from filename
func LoadFile(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", filename)
	}
	return g, nil
}
