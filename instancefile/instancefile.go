package instancefile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/sumsolve/ssp"
)

// Sentinel errors returned by the instancefile package.
var (
	// ErrInputUnavailable indicates the instance file cannot be opened or read.
	ErrInputUnavailable = errors.New("instancefile: input unavailable")

	// ErrMalformedInstance indicates a header or item line that does not parse.
	ErrMalformedInstance = errors.New("instancefile: malformed instance")
)

// maxPrealloc bounds the item capacity reserved from the header alone.
const maxPrealloc = 1 << 16

// Load opens path and parses it. The instance is named after the file's
// base name without extension.
func Load(path string) (*ssp.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer f.Close()

	return Parse(f, Name(path))
}

// Name derives the display name of an instance from its path.
func Name(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Parse reads one instance description from r.
//
// Complexity: O(n) time and space.
func Parse(r io.Reader, name string) (*ssp.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(scanAnyLines)

	var (
		lineNo int
		line   string
	)
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line = strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
		}
		return nil, fmt.Errorf("%w: missing header", ErrMalformedInstance)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: line %d: header must be \"<size> <target>\"", ErrMalformedInstance, lineNo)
	}
	size, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: size %q: %w", ErrMalformedInstance, lineNo, fields[0], err)
	}
	target, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: target %q: %w", ErrMalformedInstance, lineNo, fields[1], err)
	}

	// The header is untrusted: grow with the lines actually read.
	items := make([]uint64, 0, min(size, maxPrealloc))
	for uint64(len(items)) < size {
		text, ok := next()
		if !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
			}
			return nil, fmt.Errorf("%w: want %d items, got %d", ErrMalformedInstance, size, len(items))
		}
		v, perr := strconv.ParseUint(text, 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d: item %q: %w", ErrMalformedInstance, lineNo, text, perr)
		}
		items = append(items, v)
	}
	if extra, ok := next(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected trailing data %q", ErrMalformedInstance, lineNo, extra)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	inst, err := ssp.New(name, items, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInstance, err)
	}

	return inst, nil
}

// Write emits items and target in the instance format with "\n" endings.
func Write(w io.Writer, items []uint64, target uint64) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(items), target); err != nil {
		return err
	}
	for _, v := range items {
		if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// scanAnyLines is bufio.ScanLines extended to treat a lone '\r' as a line end.
func scanAnyLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': swallow a following '\n' when it is already buffered.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need more data to decide between "\r" and "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
