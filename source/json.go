package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// JSON decodes a JSON object into a plain mapping. See JSONReader.
func JSON(data []byte, opts ...Options) (map[string]any, error) {
	return JSONReader(bytes.NewReader(data), opts...)
}

// JSONReader decodes one JSON object from r into a plain mapping: objects
// become map[string]any, arrays []any, integral numbers int64 and other
// numbers float64. Duplicate keys are rejected unless AllowDuplicateKeys is
// set, in which case the last occurrence wins.
func JSONReader(r io.Reader, opts ...Options) (map[string]any, error) {
	v, err := JSONValue(r, opts...)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// JSONValue decodes any JSON value from r with the same rules as JSONReader.
func JSONValue(r io.Reader, opts ...Options) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	d := &jsonDecoder{dec: dec, opt: pick(opts)}
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source: empty JSON input: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("source: %w", err)
	}
	v, err := d.value(tok, "")
	if err != nil {
		return nil, err
	}
	if _, err := d.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("source: trailing data after JSON value")
	}
	return v, nil
}

type jsonDecoder struct {
	dec *j.Decoder
	opt Options
}

func (d *jsonDecoder) next() (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source: %w", io.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("source: %w", err)
	}
	return tok, nil
}

func (d *jsonDecoder) value(tok any, path string) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.object(path)
		case '[':
			return d.array(path)
		}
		return nil, fmt.Errorf("source: unexpected delimiter %q at %s", rune(v), pathOrRoot(path))
	case j.Number:
		return number(string(v)), nil
	case string, bool, nil:
		return v, nil
	}
	return nil, fmt.Errorf("source: unexpected token %v at %s", tok, pathOrRoot(path))
}

func (d *jsonDecoder) object(path string) (any, error) {
	m := make(map[string]any)
	for d.dec.More() {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("source: expected object key at %s", pathOrRoot(path))
		}
		child := path + pointerToken(key)
		if _, dup := m[key]; dup && !d.opt.AllowDuplicateKeys {
			return nil, &DuplicateKeyError{Key: key, Path: child}
		}
		vt, err := d.next()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, child)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
	if _, err := d.next(); err != nil { // '}'
		return nil, err
	}
	return m, nil
}

func (d *jsonDecoder) array(path string) (any, error) {
	arr := []any{}
	for d.dec.More() {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		v, err := d.value(tok, path+"/"+strconv.Itoa(len(arr)))
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := d.next(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}

// number converts a JSON number literal to int64 when it is integral and fits,
// float64 otherwise.
func number(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return j.Number(s)
}
