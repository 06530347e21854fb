package workspace

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"bem-translator/internal/schema"
)

const commentColumn = 26

// Write renders ws in the textual input form: one block per record, fields in
// positional order separated by ",", the last one terminated by ";", each
// followed by a "!-" comment naming the field. Trailing unset fields are
// omitted.
func Write(w io.Writer, ws *Workspace) error {
	bw := bufio.NewWriter(w)

	for i, rec := range ws.records {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}

		if err := writeRecord(bw, rec); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeRecord(w *bufio.Writer, rec *Record) error {
	type line struct {
		value   string
		comment string
	}

	var lines []line
	if rec.rt.Named {
		lines = append(lines, line{value: rec.name, comment: "Name"})
	}

	fields := rec.Fields()

	last := len(fields) - 1
	for last >= 0 && fields[last] == "" {
		last--
	}

	for pos := 0; pos <= last; pos++ {
		f, _ := rec.rt.FieldAt(pos)
		lines = append(lines, line{value: fields[pos], comment: f.Name})
	}

	if len(lines) == 0 {
		_, err := fmt.Fprintf(w, "%s;\n", rec.rt.Name)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s,\n", rec.rt.Name); err != nil {
		return err
	}

	for i, l := range lines {
		sep := ","
		if i == len(lines)-1 {
			sep = ";"
		}

		if _, err := fmt.Fprintf(w, "  %-*s !- %s\n", commentColumn, l.value+sep, l.comment); err != nil {
			return err
		}
	}

	return nil
}

// ParseError reports a malformed object in the textual input form.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads the textual input form into a new Workspace over catalog.
// Comments starting with "!" are ignored. Records are added in file order, so
// duplicate names and unknown types are reported as errors.
func Parse(r io.Reader, catalog *schema.Catalog) (*Workspace, error) {
	ws := New(catalog)

	var (
		tokens  []string
		current strings.Builder
		open    bool
		start   int
		lineNo  int
	)

	flushToken := func() {
		tokens = append(tokens, strings.TrimSpace(current.String()))
		current.Reset()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++

		text, _, _ := strings.Cut(scanner.Text(), "!")
		for _, ch := range text {
			if !open && !unicode.IsSpace(ch) {
				open = true
				start = lineNo
			}

			switch ch {
			case ',', ';':
				flushToken()

				if tokens[0] == "" {
					return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: object without a type", ErrInvalidValue)}
				}

				if ch == ';' {
					if err := addParsed(ws, tokens); err != nil {
						return nil, &ParseError{Line: start, Err: err}
					}

					tokens = nil
					open = false
				}
			default:
				current.WriteRune(ch)
			}
		}

		current.WriteByte(' ')
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if open {
		return nil, &ParseError{Line: start, Err: fmt.Errorf("%w: unterminated object", ErrInvalidValue)}
	}

	return ws, nil
}

func addParsed(ws *Workspace, tokens []string) error {
	rec, err := ws.NewRecord(tokens[0])
	if err != nil {
		return err
	}

	rt := rec.rt
	values := tokens[1:]

	if rt.Named && len(values) > 0 {
		if err := rec.SetName(values[0]); err != nil {
			return err
		}

		values = values[1:]
	}

	fixed := min(len(values), rt.NumFields())
	for i := range fixed {
		if err := rec.SetString(i, values[i]); err != nil {
			return err
		}
	}

	rest := values[fixed:]
	if len(rest) > 0 && !rt.IsExtensible() {
		return fmt.Errorf("%s: %w: %d values, %d fields", rec.Description(), ErrFieldIndex, len(values), rt.NumFields())
	}

	for len(rest) > 0 {
		group := make([]string, rt.GroupSize())
		n := copy(group, rest)
		rest = rest[n:]

		if err := rec.PushGroup(group...); err != nil {
			return err
		}
	}

	return ws.Add(rec)
}
