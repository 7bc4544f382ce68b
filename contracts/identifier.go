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
	"strconv"
	"unicode/utf8"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

// IdentifierKind is the one-byte discriminant of an Identifier on the wire.
type IdentifierKind uint8

const (
	IdentifierKindNumeric IdentifierKind = 1
	IdentifierKindNamed   IdentifierKind = 2
)

// MaxIDValueLength is the protocol-wide upper bound on a named
// Identifier's byte length.
const MaxIDValueLength = 255

// Identifier names a stream, topic or consumer group: either a numeric id
// or a bounded UTF-8 name. It is a closed tagged union; build one with
// NumericIdentifier or NamedIdentifier, never by struct literal, so the
// invariants below always hold.
type Identifier struct {
	Kind   IdentifierKind
	Length uint8
	Value  []byte
}

// NumericIdentifier builds a numeric Identifier. It is infallible: every
// uint32 is a valid numeric id.
func NumericIdentifier(value uint32) Identifier {
	b := make([]byte, 4)
	b[0] = byte(value)
	b[1] = byte(value >> 8)
	b[2] = byte(value >> 16)
	b[3] = byte(value >> 24)
	return Identifier{Kind: IdentifierKindNumeric, Length: 4, Value: b}
}

// NamedIdentifier builds a named Identifier, rejecting empty or over-long
// names with InvalidIdentifier.
func NamedIdentifier(name string) (Identifier, error) {
	if len(name) == 0 || len(name) > MaxIDValueLength {
		return Identifier{}, perr.InvalidIdentifier
	}
	return Identifier{Kind: IdentifierKindNamed, Length: uint8(len(name)), Value: []byte(name)}, nil
}

// ParseIdentifier disambiguates the CLI's single textual id form: digits
// only parse as numeric, anything else is a name. This is the one seam the
// out-of-scope command-line front-end needs from the command layer.
func ParseIdentifier(s string) (Identifier, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return NumericIdentifier(uint32(n)), nil
	}
	return NamedIdentifier(s)
}

// SizeInBytes is the wire size of the identifier: 2 header bytes plus its
// value.
func (id Identifier) SizeInBytes() int {
	return 2 + int(id.Length)
}

// Equal reports structural equality: same kind and same bytes.
func (id Identifier) Equal(other Identifier) bool {
	if id.Kind != other.Kind || id.Length != other.Length {
		return false
	}
	if len(id.Value) != len(other.Value) {
		return false
	}
	for i := range id.Value {
		if id.Value[i] != other.Value[i] {
			return false
		}
	}
	return true
}

// NumericValue returns the numeric id carried by a Kind == Numeric
// identifier. Calling it on a Named identifier returns 0, false.
func (id Identifier) NumericValue() (uint32, bool) {
	if id.Kind != IdentifierKindNumeric || len(id.Value) != 4 {
		return 0, false
	}
	v := uint32(id.Value[0]) | uint32(id.Value[1])<<8 | uint32(id.Value[2])<<16 | uint32(id.Value[3])<<24
	return v, true
}

// String renders the diagnostic display form: decimal for numeric, raw
// UTF-8 for named. Never used on the wire.
func (id Identifier) String() string {
	switch id.Kind {
	case IdentifierKindNumeric:
		v, _ := id.NumericValue()
		return strconv.FormatUint(uint64(v), 10)
	case IdentifierKindNamed:
		if utf8.Valid(id.Value) {
			return string(id.Value)
		}
		return strconv.Quote(string(id.Value))
	default:
		return ""
	}
}

// Validate checks the structural invariants of an Identifier built outside
// the constructors above (e.g. one just parsed off the wire).
func (id Identifier) Validate() error {
	switch id.Kind {
	case IdentifierKindNumeric:
		if id.Length != 4 || len(id.Value) != 4 {
			return perr.InvalidIdentifier
		}
	case IdentifierKindNamed:
		if id.Length == 0 || id.Length > MaxIDValueLength || len(id.Value) != int(id.Length) {
			return perr.InvalidIdentifier
		}
	default:
		// An unrecognized kind byte is a framing problem, not a value
		// problem: standardize on InvalidCommand.
		return perr.InvalidCommand
	}
	return nil
}
