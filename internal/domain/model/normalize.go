package model

// Package model defines the canonical record types for the finance API.
//
// The backend has been observed to emit the same record with more than one
// field-name casing (e.g. AMOUNT vs amount) depending on which store serves
// the request. Normalization happens exactly once, here at deserialization;
// the rest of the application only ever sees the canonical structs.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// decodeDoc parses raw JSON into a generic document suitable for JMESPath
// evaluation. Numbers are kept as json.Number so IDs survive unchanged.
func decodeDoc(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return doc, nil
}

// pick evaluates a JMESPath selection expression against the document.
// Expressions use `||` to try each observed casing in turn.
func pick(doc any, expr string) any {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil
	}
	return v
}

func pickString(doc any, expr string) string {
	switch v := pick(doc, expr).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func pickFloat(doc any, expr string) float64 {
	switch v := pick(doc, expr).(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func pickInt(doc any, expr string) int {
	return int(pickFloat(doc, expr))
}
