// Package molfile reads MDL V2000 molfiles and the first record of SDF files
// into a [structure.Structure].
//
// Only the header, counts line, atom block and bond block are read. Property
// lines after the bond block and any further SDF records are ignored. Atom
// names are the element symbol followed by the 1-based atom number, as
// molfiles carry no names of their own.
package molfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/geom"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// headerLines is the title, program and comment lines before the counts line.
const headerLines = 3

// ReadFile validates path, opens it and reads its first record.
func ReadFile(path string) (*structure.Structure, error) {
	if err := apperrors.ValidateStructurePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses one V2000 record from r. The returned structure is not frozen.
func Read(r io.Reader) (*structure.Structure, error) {
	p := &parser{sc: bufio.NewScanner(r)}

	for p.line < headerLines {
		if _, err := p.next(); err != nil {
			return nil, err
		}
	}

	counts, err := p.next()
	if err != nil {
		return nil, err
	}
	nAtoms, nBonds, err := parseCounts(counts)
	if err != nil {
		return nil, p.errorf("%v", err)
	}

	s := structure.New()
	for i := 0; i < nAtoms; i++ {
		text, err := p.next()
		if err != nil {
			return nil, err
		}
		element, pos, err := parseAtom(text)
		if err != nil {
			return nil, p.errorf("atom %d: %v", i+1, err)
		}
		if _, err := s.AddAtom(element, fmt.Sprintf("%s%d", structure.NormalizeElement(element), i+1), pos); err != nil {
			return nil, p.errorf("atom %d: %v", i+1, err)
		}
	}
	for i := 0; i < nBonds; i++ {
		text, err := p.next()
		if err != nil {
			return nil, err
		}
		a, b, err := parseBond(text)
		if err != nil {
			return nil, p.errorf("bond %d: %v", i+1, err)
		}
		if err := s.AddBond(structure.AtomID(a-1), structure.AtomID(b-1)); err != nil {
			return nil, p.errorf("bond %d: %v", i+1, err)
		}
	}

	return s, nil
}

type parser struct {
	sc   *bufio.Scanner
	line int
}

func (p *parser) next() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "line %d", p.line+1)
		}
		return "", apperrors.New(apperrors.ErrCodeInvalidFormat, "line %d: unexpected end of file", p.line+1)
	}
	p.line++
	return strings.TrimRight(p.sc.Text(), "\r"), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeInvalidFormat, "line %d: %s", p.line, fmt.Sprintf(format, args...))
}

// parseCounts reads the atom and bond counts from the fixed-width aaabbb
// fields, falling back to whitespace separation for hand-written files.
func parseCounts(text string) (atoms, bonds int, err error) {
	if strings.Contains(text, "V3000") {
		return 0, 0, fmt.Errorf("V3000 molfiles are not supported")
	}
	if len(text) >= 6 {
		atoms, errA := strconv.Atoi(strings.TrimSpace(text[0:3]))
		bonds, errB := strconv.Atoi(strings.TrimSpace(text[3:6]))
		if errA == nil && errB == nil && atoms >= 0 && bonds >= 0 {
			return atoms, bonds, nil
		}
	}
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("invalid counts line %q", text)
	}
	if atoms, err = strconv.Atoi(fields[0]); err != nil || atoms < 0 {
		return 0, 0, fmt.Errorf("invalid atom count %q", fields[0])
	}
	if bonds, err = strconv.Atoi(fields[1]); err != nil || bonds < 0 {
		return 0, 0, fmt.Errorf("invalid bond count %q", fields[1])
	}
	return atoms, bonds, nil
}

func parseAtom(text string) (string, geom.Vec, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return "", geom.Vec{}, fmt.Errorf("expected x y z element, got %q", text)
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return "", geom.Vec{}, fmt.Errorf("invalid coordinate %q", fields[i])
		}
		xyz[i] = v
	}
	return fields[3], geom.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parseBond(text string) (int, int, error) {
	if len(text) >= 6 {
		a, errA := strconv.Atoi(strings.TrimSpace(text[0:3]))
		b, errB := strconv.Atoi(strings.TrimSpace(text[3:6]))
		if errA == nil && errB == nil {
			return a, b, nil
		}
	}
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected two atom numbers, got %q", text)
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		return 0, 0, fmt.Errorf("invalid atom numbers in %q", text)
	}
	return a, b, nil
}
