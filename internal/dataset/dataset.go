// Package dataset loads sample tables for the piecewise command.
//
// YAML files and plain JSON files decode straight into a piecewise.Dump.
// Arbitrary JSON documents are read through gjson paths naming the t and u
// arrays (and optionally du and ddu).
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/Maxime2/piecewise"
)

// Selectors are gjson paths into a JSON document. When TPath and UPath are
// empty the document is decoded as a dump.
type Selectors struct {
	TPath, UPath    string
	DuPath, DduPath string
}

func (s Selectors) enabled() bool { return s.TPath != "" || s.UPath != "" }

// Load reads fname over base, which supplies every field the file leaves
// out. "-" reads YAML from standard input.
func Load(fname string, base piecewise.Dump, sel Selectors) (*piecewise.Dump, error) {
	var (
		data []byte
		err  error
	)
	if fname == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(fname)
	}
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fname))
	d, err := Decode(data, ext == ".json", base, sel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return d, nil
}

// Decode parses a dataset held in memory. isJSON selects JSON over YAML.
func Decode(data []byte, isJSON bool, base piecewise.Dump, sel Selectors) (*piecewise.Dump, error) {
	d := base
	switch {
	case isJSON && sel.enabled():
		if err := selectJSON(&d, data, sel); err != nil {
			return nil, err
		}
	case isJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, err
		}
	case sel.enabled():
		return nil, fmt.Errorf("gjson paths need a JSON dataset")
	default:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, err
		}
	}

	if len(d.T) == 0 {
		return nil, fmt.Errorf("dataset has no samples")
	}
	return &d, nil
}

// selectJSON fills the sample columns of d from the arrays sel points at.
// A column whose path is empty keeps its value from d.
func selectJSON(d *piecewise.Dump, data []byte, sel Selectors) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	for _, c := range []struct {
		path string
		dst  *[]float64
	}{
		{sel.TPath, &d.T},
		{sel.UPath, &d.U},
		{sel.DuPath, &d.Du},
		{sel.DduPath, &d.Ddu},
	} {
		if c.path == "" {
			continue
		}
		col, err := column(data, c.path)
		if err != nil {
			return err
		}
		*c.dst = col
	}
	return nil
}

func column(data []byte, path string) ([]float64, error) {
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("path %q not found", path)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("path %q is not an array", path)
	}

	arr := res.Array()
	out := make([]float64, len(arr))
	for i, v := range arr {
		if v.Type != gjson.Number {
			return nil, fmt.Errorf("path %q: element %d is %s, not a number", path, i, v.Type)
		}
		out[i] = v.Float()
	}
	return out, nil
}
