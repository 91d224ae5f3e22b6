// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package values

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/propertystore/fault"
)

// Parse - a value from its type name and text form
//
// type names: bool int float string and the array forms bool[] int[]
// float[] string[] whose elements are separated by commas
func Parse(typeName string, text string) (Value, error) {
	if strings.HasSuffix(typeName, "[]") {
		var elements []string
		if "" != text {
			elements = strings.Split(text, ",")
		}
		return parseArray(strings.TrimSuffix(typeName, "[]"), elements)
	}

	switch typeName {
	case "bool":
		b, err := strconv.ParseBool(text)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		return Bool(b), nil
	case "int":
		n, err := strconv.ParseInt(text, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		return Int(n), nil
	case "float":
		f, err := strconv.ParseFloat(text, 64)
		if nil != err {
			return nil, fault.ErrInvalidValue
		}
		return Float(f), nil
	case "string":
		return String(text), nil
	default:
		return nil, fault.ErrUnknownPropertyType
	}
}

func parseArray(typeName string, elements []string) (Value, error) {
	switch typeName {
	case "bool":
		result := make(BoolArray, len(elements))
		for i, e := range elements {
			b, err := strconv.ParseBool(strings.TrimSpace(e))
			if nil != err {
				return nil, fault.ErrInvalidValue
			}
			result[i] = b
		}
		return result, nil
	case "int":
		result := make(IntArray, len(elements))
		for i, e := range elements {
			n, err := strconv.ParseInt(strings.TrimSpace(e), 10, 64)
			if nil != err {
				return nil, fault.ErrInvalidValue
			}
			result[i] = n
		}
		return result, nil
	case "float":
		result := make(FloatArray, len(elements))
		for i, e := range elements {
			f, err := strconv.ParseFloat(strings.TrimSpace(e), 64)
			if nil != err {
				return nil, fault.ErrInvalidValue
			}
			result[i] = f
		}
		return result, nil
	case "string":
		result := make(StringArray, len(elements))
		copy(result, elements)
		return result, nil
	default:
		return nil, fault.ErrUnknownPropertyType
	}
}
