// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package values

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/propertystore/fault"
	"github.com/bitmark-inc/propertystore/record"
	"github.com/bitmark-inc/propertystore/util"
)

// Pack - the block type and payload bytes of a value
//
// strings that fit the inline payload become short strings; arrays are
//   element type(1) ++ count(varint) ++ elements
// with string elements as length(varint) ++ bytes
func Pack(v Value) (record.PropertyType, []byte, error) {
	switch value := v.(type) {
	case Bool:
		return record.BoolType, packBool(bool(value)), nil
	case Int:
		return record.IntType, packUint64(uint64(value)), nil
	case Float:
		return record.FloatType, packUint64(math.Float64bits(float64(value))), nil
	case String:
		if len(value) <= record.InlinePayloadSize {
			return record.ShortStringType, []byte(value), nil
		}
		return record.StringType, []byte(value), nil

	case BoolArray:
		buffer := arrayHeader(record.BoolType, len(value))
		for _, b := range value {
			buffer = append(buffer, packBool(b)...)
		}
		return record.ArrayType, buffer, nil

	case IntArray:
		buffer := arrayHeader(record.IntType, len(value))
		for _, n := range value {
			buffer = append(buffer, packUint64(uint64(n))...)
		}
		return record.ArrayType, buffer, nil

	case FloatArray:
		buffer := arrayHeader(record.FloatType, len(value))
		for _, f := range value {
			buffer = append(buffer, packUint64(math.Float64bits(f))...)
		}
		return record.ArrayType, buffer, nil

	case StringArray:
		buffer := arrayHeader(record.StringType, len(value))
		for _, s := range value {
			buffer = util.AppendVarint64(buffer, uint64(len(s)))
			buffer = append(buffer, s...)
		}
		return record.ArrayType, buffer, nil

	default:
		return record.NoType, nil, fault.ErrInvalidValue
	}
}

// Unpack - rebuild a value from its block type and payload bytes
func Unpack(t record.PropertyType, data []byte) (Value, error) {
	switch t {
	case record.BoolType:
		if len(data) < 1 {
			return nil, fault.ErrTruncatedValue
		}
		return Bool(0 != data[0]), nil

	case record.IntType:
		if len(data) < 8 {
			return nil, fault.ErrTruncatedValue
		}
		return Int(int64(binary.BigEndian.Uint64(data))), nil

	case record.FloatType:
		if len(data) < 8 {
			return nil, fault.ErrTruncatedValue
		}
		return Float(math.Float64frombits(binary.BigEndian.Uint64(data))), nil

	case record.ShortStringType, record.StringType:
		return String(data), nil

	case record.ArrayType:
		return unpackArray(data)

	default:
		return nil, fault.ErrUnknownPropertyType
	}
}

func unpackArray(data []byte) (Value, error) {
	if len(data) < 1 {
		return nil, fault.ErrTruncatedValue
	}
	elementType := record.PropertyType(data[0])
	data = data[1:]

	count, n := util.FromVarint64(data)
	if 0 == n {
		return nil, fault.ErrTruncatedValue
	}
	data = data[n:]

	// every element takes at least one byte
	if count > uint64(len(data)) {
		return nil, fault.ErrTruncatedValue
	}

	switch elementType {
	case record.BoolType:
		result := make(BoolArray, count)
		for i := range result {
			result[i] = 0 != data[i]
		}
		return result, nil

	case record.IntType, record.FloatType:
		if count*8 > uint64(len(data)) {
			return nil, fault.ErrTruncatedValue
		}
		if record.IntType == elementType {
			result := make(IntArray, count)
			for i := range result {
				result[i] = int64(binary.BigEndian.Uint64(data[i*8:]))
			}
			return result, nil
		}
		result := make(FloatArray, count)
		for i := range result {
			result[i] = math.Float64frombits(binary.BigEndian.Uint64(data[i*8:]))
		}
		return result, nil

	case record.StringType:
		result := make(StringArray, count)
		for i := range result {
			length, n := util.FromVarint64(data)
			if 0 == n || length > uint64(len(data)-n) {
				return nil, fault.ErrTruncatedValue
			}
			data = data[n:]
			result[i] = string(data[:length])
			data = data[length:]
		}
		return result, nil

	default:
		return nil, fault.ErrUnknownPropertyType
	}
}

func arrayHeader(elementType record.PropertyType, count int) []byte {
	buffer := []byte{byte(elementType)}
	return util.AppendVarint64(buffer, uint64(count))
}

func packBool(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}

func packUint64(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
