package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads an int from r.
// 'b' is the last read byte. It can be a space, a '-' or a digit.
// The int can be negated.
// All spaces before the int value are ignored.
// Returns io.EOF iff the end of the stream was reached before any digit.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("could not read digit: %v", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
	}
	for {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if err == io.EOF {
			*b = ' ' // The int ends the stream; the next read will see EOF again.
			break
		}
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %v", err)
		}
		if isSpace(*b) {
			break
		}
	}
	return res * neg, nil
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, 0, fmt.Errorf("cannot read header: %v", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != "cnf" {
		return 0, 0, fmt.Errorf("invalid syntax %q in header", "p "+strings.TrimSpace(line))
	}
	nbVars, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("nbvars not an int : %q", fields[1])
	}
	nbClauses, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("nbClauses not an int : %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Parse parses a DIMACS CNF stream and returns the corresponding Formula.
// Lines starting with 'c' are comments, the 'p cnf <vars> <clauses>' line
// declares the formula's size, every other non-blank line is a clause: a
// list of whitespace-separated literals terminated by a 0.
// The declared clause count is used only as a capacity hint; the actual
// number of clauses found in the stream prevails.
func Parse(f io.Reader) (*Formula, error) {
	r := bufio.NewReader(f)
	var pb Formula
	b, err := r.ReadByte()
	for err == nil {
		if b == 'c' { // Ignore comment
			b, err = r.ReadByte()
			for err == nil && b != '\n' {
				b, err = r.ReadByte()
			}
		} else if b == 'p' { // Parse header
			var nbClauses int
			pb.NbVars, nbClauses, err = parseHeader(r)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %v", err)
			}
			pb.Clauses = make([][]int, 0, nbClauses)
		} else if isSpace(b) {
			// Blank space between clauses.
		} else {
			clause := make([]int, 0, 3)
			for {
				val, rerr := readInt(&b, r)
				if rerr == io.EOF {
					if len(clause) != 0 { // This is not a trailing space at the end...
						return nil, fmt.Errorf("unfinished clause while EOF found")
					}
					break // Only trailing spaces at the end of the file, that is ok
				}
				if rerr != nil {
					return nil, fmt.Errorf("cannot parse clause: %v", rerr)
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, clause)
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, fmt.Errorf("invalid literal %d for problem with %d vars only", val, pb.NbVars)
				}
				clause = append(clause, val)
			}
		}
		b, err = r.ReadByte()
	}
	if err != io.EOF {
		return nil, err
	}
	return &pb, nil
}
