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

// SerializePartitioning writes the one kind byte, one length byte, then
// Value.
func SerializePartitioning(p contracts.Partitioning) []byte {
	buf := make([]byte, p.SizeInBytes())
	buf[0] = byte(p.Kind)
	buf[1] = p.Length
	copy(buf[2:], p.Value)
	return buf
}

// ParsePartitioning reads one Partitioning off the front of buf.
func ParsePartitioning(buf []byte) (contracts.Partitioning, []byte, error) {
	if err := requireLen(buf, 2); err != nil {
		return contracts.Partitioning{}, nil, err
	}
	kind, err := contracts.PartitioningKindFromCode(buf[0])
	if err != nil {
		return contracts.Partitioning{}, nil, err
	}
	length := buf[1]
	if err := requireLen(buf[2:], int(length)); err != nil {
		return contracts.Partitioning{}, nil, err
	}
	value := make([]byte, length)
	copy(value, buf[2:2+int(length)])
	return contracts.Partitioning{Kind: kind, Length: length, Value: value}, buf[2+int(length):], nil
}
