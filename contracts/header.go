// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package contracts

import (
	"math"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

// MaxHeaderKeyLength and MaxHeaderStringValueLength bound the two
// variable-length header kinds that are text rather than raw bytes.
const (
	MaxHeaderKeyLength         = 255
	MaxHeaderStringValueLength = 255
	// MaxHeaderRawValueLength is the configurable cap on a raw header
	// value; the protocol does not fix it below MaxUserHeadersSize, so we
	// use that as the natural ceiling.
	MaxHeaderRawValueLength = MaxUserHeadersSize
)

// HeaderKey is a bounded UTF-8 string, 1-255 bytes, compared byte-for-byte.
type HeaderKey struct {
	value string
}

// NewHeaderKey validates and wraps a header key.
func NewHeaderKey(key string) (HeaderKey, error) {
	if len(key) == 0 || len(key) > MaxHeaderKeyLength {
		return HeaderKey{}, perr.InvalidHeaderKey
	}
	return HeaderKey{value: key}, nil
}

func (k HeaderKey) String() string { return k.value }

// SizeInBytes is the wire size of the key: a u32 length prefix plus bytes.
func (k HeaderKey) SizeInBytes() int { return 4 + len(k.value) }

// HeaderValueKind is the one-byte discriminant of a HeaderValue.
type HeaderValueKind uint8

const (
	HeaderRaw HeaderValueKind = iota + 1
	HeaderString
	HeaderBool
	HeaderInt8
	HeaderInt16
	HeaderInt32
	HeaderInt64
	HeaderInt128
	HeaderUint8
	HeaderUint16
	HeaderUint32
	HeaderUint64
	HeaderUint128
	HeaderFloat32
	HeaderFloat64
)

// fixedHeaderValueSize returns the natural wire size of a fixed-width
// header kind, or 0 for the variable-length kinds (Raw, String).
func fixedHeaderValueSize(kind HeaderValueKind) int {
	switch kind {
	case HeaderBool, HeaderInt8, HeaderUint8:
		return 1
	case HeaderInt16, HeaderUint16:
		return 2
	case HeaderInt32, HeaderUint32, HeaderFloat32:
		return 4
	case HeaderInt64, HeaderUint64, HeaderFloat64:
		return 8
	case HeaderInt128, HeaderUint128:
		return 16
	default:
		return 0
	}
}

// HeaderValue is a tagged union over the fifteen header value kinds. Build
// one with the New*Header constructors; the zero value is not valid.
type HeaderValue struct {
	Kind  HeaderValueKind
	Value []byte
}

// NewRawHeaderValue builds a Raw-kind value, rejecting empty or
// over-long byte slices.
func NewRawHeaderValue(value []byte) (HeaderValue, error) {
	if len(value) == 0 || len(value) > MaxHeaderRawValueLength {
		return HeaderValue{}, perr.InvalidHeaderValue
	}
	return HeaderValue{Kind: HeaderRaw, Value: value}, nil
}

// NewStringHeaderValue builds a String-kind value.
func NewStringHeaderValue(value string) (HeaderValue, error) {
	if len(value) == 0 || len(value) > MaxHeaderStringValueLength {
		return HeaderValue{}, perr.InvalidHeaderValue
	}
	return HeaderValue{Kind: HeaderString, Value: []byte(value)}, nil
}

func NewBoolHeaderValue(v bool) HeaderValue {
	b := byte(0)
	if v {
		b = 1
	}
	return HeaderValue{Kind: HeaderBool, Value: []byte{b}}
}

func NewInt32HeaderValue(v int32) HeaderValue {
	return HeaderValue{Kind: HeaderInt32, Value: leBytes(uint64(uint32(v)), 4)}
}

func NewInt64HeaderValue(v int64) HeaderValue {
	return HeaderValue{Kind: HeaderInt64, Value: leBytes(uint64(v), 8)}
}

func NewUint32HeaderValue(v uint32) HeaderValue {
	return HeaderValue{Kind: HeaderUint32, Value: leBytes(uint64(v), 4)}
}

func NewUint64HeaderValue(v uint64) HeaderValue {
	return HeaderValue{Kind: HeaderUint64, Value: leBytes(v, 8)}
}

func NewFloat64HeaderValue(v float64) HeaderValue {
	return HeaderValue{Kind: HeaderFloat64, Value: leBytes(math.Float64bits(v), 8)}
}

func leBytes(v uint64, n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

// Validate checks a HeaderValue's length against the rule for its kind.
// Parsed-from-wire values must pass this before being handed back to a
// caller.
func (v HeaderValue) Validate() error {
	switch v.Kind {
	case HeaderRaw:
		if len(v.Value) == 0 || len(v.Value) > MaxHeaderRawValueLength {
			return perr.InvalidHeaderValue
		}
	case HeaderString:
		if len(v.Value) == 0 || len(v.Value) > MaxHeaderStringValueLength {
			return perr.InvalidHeaderValue
		}
	case HeaderBool, HeaderInt8, HeaderInt16, HeaderInt32, HeaderInt64, HeaderInt128,
		HeaderUint8, HeaderUint16, HeaderUint32, HeaderUint64, HeaderUint128,
		HeaderFloat32, HeaderFloat64:
		if want := fixedHeaderValueSize(v.Kind); len(v.Value) != want {
			return perr.InvalidHeaderValue
		}
	default:
		return perr.InvalidCommand
	}
	return nil
}

// SizeInBytes is the wire size: a one-byte kind, a u32 length, then the
// payload.
func (v HeaderValue) SizeInBytes() int { return 1 + 4 + len(v.Value) }

// HeaderSet maps unique HeaderKeys to HeaderValues; insertion order is not
// significant.
type HeaderSet map[HeaderKey]HeaderValue

// SizeInBytes sums the wire size of every key||value record.
func (h HeaderSet) SizeInBytes() int {
	total := 0
	for k, v := range h {
		total += k.SizeInBytes() + v.SizeInBytes()
	}
	return total
}
