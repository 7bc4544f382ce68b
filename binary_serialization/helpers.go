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

// Package binaryserialization is the codec half of the command layer: one
// Serialize/Parse pair per primitive and per command, all little-endian,
// all pure functions of their input bytes.
package binaryserialization

import (
	"encoding/binary"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

// errInvalidCommand is reused by the empty-payload commands (LogoutUser,
// GetStreams, Ping, ...) when the caller supplies unexpected trailing
// bytes.
var errInvalidCommand = perr.InvalidCommand

func putUint32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func getUint32(src []byte) uint32    { return binary.LittleEndian.Uint32(src) }
func putUint64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }
func getUint64(src []byte) uint64    { return binary.LittleEndian.Uint64(src) }

func putBool(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func getBool(b byte) bool { return b != 0 }

// requireLen fails with InvalidCommand when buf is shorter than n.
func requireLen(buf []byte, n int) error {
	if len(buf) < n {
		return perr.InvalidCommand
	}
	return nil
}

// optionalUint32 serializes an *uint32 as a one-byte present flag followed
// by 4 value bytes (zero bytes when absent), the pattern every optional
// numeric field in the command set uses.
func optionalUint32(v *uint32) []byte {
	b := make([]byte, 5)
	if v != nil {
		b[0] = 1
		putUint32(b[1:5], *v)
	}
	return b
}

func parseOptionalUint32(buf []byte) (*uint32, []byte, error) {
	if err := requireLen(buf, 5); err != nil {
		return nil, nil, err
	}
	if buf[0] == 0 {
		return nil, buf[5:], nil
	}
	v := getUint32(buf[1:5])
	return &v, buf[5:], nil
}

func optionalUint64(v *uint64) []byte {
	b := make([]byte, 9)
	if v != nil {
		b[0] = 1
		putUint64(b[1:9], *v)
	}
	return b
}

func parseOptionalUint64(buf []byte) (*uint64, []byte, error) {
	if err := requireLen(buf, 9); err != nil {
		return nil, nil, err
	}
	if buf[0] == 0 {
		return nil, buf[9:], nil
	}
	v := getUint64(buf[1:9])
	return &v, buf[9:], nil
}

func putString(dst []byte, s string) int {
	putUint32(dst, uint32(len(s)))
	copy(dst[4:], s)
	return 4 + len(s)
}

func parseString(buf []byte) (string, []byte, error) {
	if err := requireLen(buf, 4); err != nil {
		return "", nil, err
	}
	n := int(getUint32(buf[:4]))
	if err := requireLen(buf[4:], n); err != nil {
		return "", nil, err
	}
	return string(buf[4 : 4+n]), buf[4+n:], nil
}

func stringSize(s string) int { return 4 + len(s) }
