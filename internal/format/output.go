// Package format renders command results as JSON, EDN or plain text.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const (
	JSON = "json"
	EDN  = "edn"
	Text = "text"
)

func Formats() []string { return []string{JSON, EDN, Text} }

// Texter is implemented by values that have their own plain-text rendition.
type Texter interface {
	Text() string
}

// Write writes v in the requested format ("" means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", JSON:
		return WriteJSON(w, v, pretty)
	case EDN:
		return WriteEDN(w, v, pretty)
	case Text:
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s (want %s)", format, strings.Join(Formats(), "|"))
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText prints a Texter as-is. Anything else goes through its JSON form
// and is printed as indented "key: value" lines.
func WriteText(w io.Writer, v any) error {
	if t, ok := v.(Texter); ok {
		s := t.Text()
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		_, err := io.WriteString(w, s)
		return err
	}
	x, err := toGeneric(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	writeTextValue(&buf, x, 0)
	_, err = w.Write(buf.Bytes())
	return err
}

func writeTextValue(buf *bytes.Buffer, v any, level int) {
	pad := strings.Repeat("  ", level)
	switch t := v.(type) {
	case map[string]any:
		for _, k := range sortedKeys(t) {
			switch child := t[k].(type) {
			case map[string]any, []any:
				if isEmpty(child) {
					fmt.Fprintf(buf, "%s%s: -\n", pad, k)
					continue
				}
				fmt.Fprintf(buf, "%s%s:\n", pad, k)
				writeTextValue(buf, child, level+1)
			default:
				fmt.Fprintf(buf, "%s%s: %s\n", pad, k, scalarText(child))
			}
		}
	case []any:
		for _, it := range t {
			switch child := it.(type) {
			case map[string]any:
				fmt.Fprintf(buf, "%s-\n", pad)
				writeTextValue(buf, child, level+1)
			case []any:
				writeTextValue(buf, child, level+1)
			default:
				fmt.Fprintf(buf, "%s- %s\n", pad, scalarText(child))
			}
		}
	default:
		fmt.Fprintf(buf, "%s%s\n", pad, scalarText(t))
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// toGeneric converts v to maps, slices and scalars through its JSON tags.
func toGeneric(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	return x, nil
}
