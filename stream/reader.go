package stream

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Truman-Xu/crimm/builder"
	"github.com/Truman-Xu/crimm/entity"
)

// Options configures a Reader.
type Options struct {
	// Latin1 decodes the input from ISO 8859-1 instead of UTF-8. Legacy
	// record dumps from older toolchains use that encoding.
	// Default: false
	Latin1 bool
}

// DefaultOptions returns the options for reading UTF-8 record files.
func DefaultOptions() *Options {
	return &Options{}
}

// Reader decodes the tab-separated event-record form into Records. It
// implements Source.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a reader over r. A nil opts uses DefaultOptions().
func NewReader(r io.Reader, opts *Options) *Reader {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next implements Source, skipping blank and comment lines.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := r.parse(line)
		if err != nil {
			return Record{}, err
		}
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	return Record{}, io.EOF
}

// Line returns the number of the last line consumed.
func (r *Reader) Line() int { return r.line }

func (r *Reader) parse(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	verb := fields[0]
	args := fields[1:]
	rec := Record{Line: r.line}

	switch verb {
	case "structure", "chain", "seg":
		if len(args) != 1 {
			return rec, r.badf("%s takes 1 field, got %d", verb, len(args))
		}
		rec.ID = args[0]
		switch verb {
		case "structure":
			rec.Kind = KindStructure
		case "chain":
			rec.Kind = KindChain
		default:
			rec.Kind = KindSeg
		}
		return rec, nil

	case "model":
		if len(args) != 1 {
			return rec, r.badf("model takes 1 field, got %d", len(args))
		}
		serial, err := strconv.Atoi(args[0])
		if err != nil {
			return rec, r.badf("model serial %q", args[0])
		}
		rec.Kind = KindModel
		rec.Serial = serial
		return rec, nil

	case "residue":
		// The trailing icode field may be omitted entirely; editors tend
		// to strip the tab that would precede an empty one.
		if len(args) != 3 && len(args) != 4 {
			return rec, r.badf("residue takes 3 or 4 fields, got %d", len(args))
		}
		seq, err := strconv.Atoi(args[2])
		if err != nil {
			return rec, r.badf("residue seq %q", args[2])
		}
		rec.Kind = KindResidue
		rec.ResName = args[0]
		rec.HetFlag = args[1]
		rec.Seq = seq
		if len(args) == 4 && args[3] != "" {
			if len(args[3]) > 1 {
				return rec, r.badf("insertion code %q", args[3])
			}
			rec.ICode = args[3][0]
		}
		return rec, nil

	case "atom", "pqratom":
		atom, err := r.parseAtom(args, verb == "pqratom")
		if err != nil {
			return rec, err
		}
		rec.Kind = KindAtom
		rec.Atom = atom
		return rec, nil

	case "endchain":
		rec.Kind = KindEndChain
		return rec, nil
	case "endmodel":
		rec.Kind = KindEndModel
		return rec, nil
	case "end":
		rec.Kind = KindEndStructure
		return rec, nil

	default:
		return rec, r.badf("unknown event %q", verb)
	}
}

// parseAtom decodes the 10 fields shared by atom and pqratom records:
// name, fullname, altloc, serial, element, x, y, z and then either
// occupancy+bfactor or charge+radius. Empty x, y and z mean the
// position is absent.
func (r *Reader) parseAtom(args []string, pqr bool) (*builder.AtomRecord, error) {
	if len(args) != 10 {
		return nil, r.badf("atom takes 10 fields, got %d", len(args))
	}
	serial, err := strconv.Atoi(args[3])
	if err != nil {
		return nil, r.badf("atom serial %q", args[3])
	}
	rec := &builder.AtomRecord{
		Name:     args[0],
		FullName: args[1],
		AltLoc:   args[2],
		Serial:   serial,
		Element:  args[4],
		PQR:      pqr,
	}

	if args[5] != "" || args[6] != "" || args[7] != "" {
		var coord entity.Coord
		for i, dst := range []*float64{&coord.X, &coord.Y, &coord.Z} {
			v, err := strconv.ParseFloat(args[5+i], 64)
			if err != nil {
				return nil, r.badf("atom coordinate %q", args[5+i])
			}
			*dst = v
		}
		rec.Coord = &coord
	}

	a, err := strconv.ParseFloat(args[8], 64)
	if err != nil {
		return nil, r.badf("atom field %q", args[8])
	}
	b, err := strconv.ParseFloat(args[9], 64)
	if err != nil {
		return nil, r.badf("atom field %q", args[9])
	}
	if pqr {
		rec.Charge = &a
		rec.Radius = &b
	} else {
		rec.Occupancy = a
		rec.BFactor = b
	}
	return rec, nil
}

func (r *Reader) badf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s (line %d)", ErrBadRecord, msg, r.line)
}
