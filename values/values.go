// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Value - a property value
type Value interface {
	String() string
	Equal(Value) bool
}

// the value types
type (
	Bool        bool
	Int         int64
	Float       float64
	String      string
	BoolArray   []bool
	IntArray    []int64
	FloatArray  []float64
	StringArray []string
)

func (v Bool) String() string   { return fmt.Sprintf("Bool(%t)", bool(v)) }
func (v Int) String() string    { return fmt.Sprintf("Int(%d)", int64(v)) }
func (v Float) String() string  { return "Float(" + formatFloat(float64(v)) + ")" }
func (v String) String() string { return fmt.Sprintf("String(%q)", string(v)) }

func (v BoolArray) String() string {
	s := make([]string, len(v))
	for i, b := range v {
		s[i] = strconv.FormatBool(b)
	}
	return "BoolArray[" + strings.Join(s, ", ") + "]"
}

func (v IntArray) String() string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.FormatInt(n, 10)
	}
	return "IntArray[" + strings.Join(s, ", ") + "]"
}

func (v FloatArray) String() string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = formatFloat(f)
	}
	return "FloatArray[" + strings.Join(s, ", ") + "]"
}

func (v StringArray) String() string {
	s := make([]string, len(v))
	for i, str := range v {
		s[i] = strconv.Quote(str)
	}
	return "StringArray[" + strings.Join(s, ", ") + "]"
}

func (v Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

func (v Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && v == o
}

func (v Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && v == o
}

func (v String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && v == o
}

func (v BoolArray) Equal(other Value) bool {
	o, ok := other.(BoolArray)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func (v IntArray) Equal(other Value) bool {
	o, ok := other.(IntArray)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func (v FloatArray) Equal(other Value) bool {
	o, ok := other.(FloatArray)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func (v StringArray) Equal(other Value) bool {
	o, ok := other.(StringArray)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
