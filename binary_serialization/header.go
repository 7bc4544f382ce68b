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

package binaryserialization

import (
	"github.com/nimbusmq/nimbusmq/contracts"
	perr "github.com/nimbusmq/nimbusmq/errors"
)

// SerializeHeaderKey writes a u32 length prefix followed by the key's
// bytes.
func SerializeHeaderKey(key contracts.HeaderKey) []byte {
	s := key.String()
	buf := make([]byte, key.SizeInBytes())
	putString(buf, s)
	return buf
}

// ParseHeaderKey reads one HeaderKey off the front of buf.
func ParseHeaderKey(buf []byte) (contracts.HeaderKey, []byte, error) {
	s, rest, err := parseString(buf)
	if err != nil {
		return contracts.HeaderKey{}, nil, err
	}
	key, err := contracts.NewHeaderKey(s)
	if err != nil {
		return contracts.HeaderKey{}, nil, err
	}
	return key, rest, nil
}

// SerializeHeaderValue writes the one-byte kind, a u32 length, then the
// payload bytes.
func SerializeHeaderValue(v contracts.HeaderValue) []byte {
	buf := make([]byte, v.SizeInBytes())
	buf[0] = byte(v.Kind)
	putUint32(buf[1:5], uint32(len(v.Value)))
	copy(buf[5:], v.Value)
	return buf
}

// ParseHeaderValue reads one HeaderValue off the front of buf and
// validates it against the length rule for its kind.
func ParseHeaderValue(buf []byte) (contracts.HeaderValue, []byte, error) {
	if err := requireLen(buf, 5); err != nil {
		return contracts.HeaderValue{}, nil, err
	}
	kind := contracts.HeaderValueKind(buf[0])
	n := int(getUint32(buf[1:5]))
	if err := requireLen(buf[5:], n); err != nil {
		return contracts.HeaderValue{}, nil, err
	}
	value := make([]byte, n)
	copy(value, buf[5:5+n])
	hv := contracts.HeaderValue{Kind: kind, Value: value}
	if err := hv.Validate(); err != nil {
		return contracts.HeaderValue{}, nil, err
	}
	return hv, buf[5+n:], nil
}

// SerializeHeaderSet concatenates key||value records with no explicit
// count; the caller's enclosing frame gives the total byte length to
// parse over.
func SerializeHeaderSet(headers contracts.HeaderSet) []byte {
	buf := make([]byte, headers.SizeInBytes())
	pos := 0
	for k, v := range headers {
		kb := SerializeHeaderKey(k)
		copy(buf[pos:], kb)
		pos += len(kb)
		vb := SerializeHeaderValue(v)
		copy(buf[pos:], vb)
		pos += len(vb)
	}
	return buf
}

// ParseHeaderSet consumes buf exhaustively, parsing key||value records
// until no bytes remain. Trailing bytes that don't form a complete record
// fail with InvalidHeaderValue.
func ParseHeaderSet(buf []byte) (contracts.HeaderSet, error) {
	headers := make(contracts.HeaderSet)
	for len(buf) > 0 {
		key, rest, err := ParseHeaderKey(buf)
		if err != nil {
			return nil, perr.InvalidHeaderValue
		}
		if len(rest) < 5 || len(rest)-5 < int(getUint32(rest[1:5])) {
			return nil, perr.InvalidHeaderValue
		}
		value, rest2, err := ParseHeaderValue(rest)
		if err != nil {
			return nil, err
		}
		headers[key] = value
		buf = rest2
	}
	return headers, nil
}
