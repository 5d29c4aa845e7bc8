package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML decodes the first document of data into a plain mapping. See YAMLReader.
func YAML(data []byte, opts ...Options) (map[string]any, error) {
	r := NewYAMLReader(bytes.NewReader(data), opts...)
	v, err := r.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source: empty YAML input: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return m, nil
}

// YAMLReader decodes a multi-document YAML stream using yaml.Node so
// duplicate keys can be reported with their positions.
type YAMLReader struct {
	dec *yaml.Decoder
	opt Options
}

// NewYAMLReader constructs a YAMLReader.
func NewYAMLReader(r io.Reader, opts ...Options) *YAMLReader {
	return &YAMLReader{dec: yaml.NewDecoder(r), opt: pick(opts)}
}

// Next returns the next document converted into a plain value. It returns
// (nil, io.EOF) when the stream is exhausted.
func (s *YAMLReader) Next() (any, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("source: %w", err)
	}
	return nodeValue(&root, "", s.opt)
}

// ReadAll reads all documents from the stream.
func (s *YAMLReader) ReadAll() ([]any, error) {
	var out []any
	for {
		v, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

// YAMLNode converts an already decoded node into a plain value.
func YAMLNode(n *yaml.Node, opts ...Options) (any, error) {
	if n == nil || n.Kind == 0 {
		return nil, nil
	}
	return nodeValue(n, "", pick(opts))
}

func nodeValue(n *yaml.Node, path string, opt Options) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0], path, opt)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		return nodeValue(n.Alias, path, opt)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		seen := make(map[string]struct{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			key := k.Value
			child := path + pointerToken(key)
			if _, dup := seen[key]; dup && !opt.AllowDuplicateKeys {
				return nil, &DuplicateKeyError{Key: key, Path: child, Line: k.Line, Col: k.Column}
			}
			seen[key] = struct{}{}
			val, err := nodeValue(v, child, opt)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeValue(c, path+"/"+strconv.Itoa(i), opt)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarValue(n), nil
	}
	return nil, nil
}

func scalarValue(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		// int64 avoids overflow surprises
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f
		}
	}
	return n.Value
}
