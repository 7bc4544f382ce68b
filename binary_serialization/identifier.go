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
)

// SerializeIdentifier writes the one kind byte, one length byte, then the
// identifier's value bytes.
func SerializeIdentifier(id contracts.Identifier) []byte {
	buf := make([]byte, id.SizeInBytes())
	buf[0] = byte(id.Kind)
	buf[1] = id.Length
	copy(buf[2:], id.Value)
	return buf
}

// ParseIdentifier reads one Identifier off the front of buf and returns
// the remaining, unconsumed bytes.
func ParseIdentifier(buf []byte) (contracts.Identifier, []byte, error) {
	if err := requireLen(buf, 2); err != nil {
		return contracts.Identifier{}, nil, err
	}
	kind := contracts.IdentifierKind(buf[0])
	length := buf[1]
	if err := requireLen(buf[2:], int(length)); err != nil {
		return contracts.Identifier{}, nil, err
	}
	value := make([]byte, length)
	copy(value, buf[2:2+int(length)])
	id := contracts.Identifier{Kind: kind, Length: length, Value: value}
	if err := id.Validate(); err != nil {
		return contracts.Identifier{}, nil, err
	}
	return id, buf[2+int(length):], nil
}
