package palette

import "strings"

// Entry is a single leaf of a colour configuration.
type Entry struct {
	Name  string // path segments joined with '-'
	Value any
}

// Flatten walks cfg depth-first in key order and returns one Entry per leaf.
func Flatten(cfg Config) []Entry {
	return flatten(cfg, nil, nil)
}

func flatten(cfg Config, prefix []string, out []Entry) []Entry {
	for _, f := range cfg {
		path := append(prefix[:len(prefix):len(prefix)], f.Key)
		if nested, ok := f.Value.(Config); ok {
			out = flatten(nested, path, out)
			continue
		}
		out = append(out, Entry{Name: strings.Join(path, "-"), Value: f.Value})
	}
	return out
}
