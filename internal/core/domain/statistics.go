package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Difference is one divergence between expected and actual run statistics,
// addressed by a JSON-pointer-style path into the documents.
type Difference struct {
	Path     string
	Expected string
	Actual   string
}

func (d Difference) String() string {
	return d.Path + ": expected " + d.Expected + ", got " + d.Actual
}

// CompareStatistics deep-compares two parsed JSON documents and returns every
// divergence sorted by path. An empty result means deep equality.
func CompareStatistics(expected, actual any) []Difference {
	var diffs []Difference
	compareValues("", expected, actual, &diffs)
	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })
	return diffs
}

// FormatDifferences renders differences one per line for error messages.
func FormatDifferences(diffs []Difference) string {
	lines := make([]string, 0, len(diffs))
	for _, d := range diffs {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

func compareValues(path string, expected, actual any, diffs *[]Difference) {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			*diffs = append(*diffs, Difference{path, renderValue(expected), renderValue(actual)})
			return
		}
		compareObjects(path, exp, act, diffs)
	case []any:
		act, ok := actual.([]any)
		if !ok {
			*diffs = append(*diffs, Difference{path, renderValue(expected), renderValue(actual)})
			return
		}
		compareArrays(path, exp, act, diffs)
	default:
		if !reflect.DeepEqual(expected, actual) {
			*diffs = append(*diffs, Difference{path, renderValue(expected), renderValue(actual)})
		}
	}
}

func compareObjects(path string, expected, actual map[string]any, diffs *[]Difference) {
	keys := make([]string, 0, len(expected)+len(actual))
	for k := range expected {
		keys = append(keys, k)
	}
	for k := range actual {
		if _, ok := expected[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		childPath := path + "/" + escapePointerToken(k)
		expVal, expOK := expected[k]
		actVal, actOK := actual[k]
		switch {
		case expOK && !actOK:
			*diffs = append(*diffs, Difference{childPath, renderValue(expVal), "<absent>"})
		case !expOK && actOK:
			*diffs = append(*diffs, Difference{childPath, "<absent>", renderValue(actVal)})
		default:
			compareValues(childPath, expVal, actVal, diffs)
		}
	}
}

func compareArrays(path string, expected, actual []any, diffs *[]Difference) {
	if len(expected) != len(actual) {
		*diffs = append(*diffs, Difference{
			Path:     path,
			Expected: strconv.Itoa(len(expected)) + " elements",
			Actual:   strconv.Itoa(len(actual)) + " elements",
		})
	}
	for i := 0; i < len(expected) && i < len(actual); i++ {
		compareValues(path+"/"+strconv.Itoa(i), expected[i], actual[i], diffs)
	}
}

// escapePointerToken applies the JSON pointer escaping rules (RFC 6901).
func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func renderValue(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
