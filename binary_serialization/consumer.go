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

// SerializeConsumer writes the one kind byte followed by the embedded
// identifier.
func SerializeConsumer(c contracts.Consumer) []byte {
	buf := make([]byte, c.SizeInBytes())
	buf[0] = byte(c.Kind)
	copy(buf[1:], SerializeIdentifier(c.ID))
	return buf
}

// ParseConsumer reads one Consumer off the front of buf.
func ParseConsumer(buf []byte) (contracts.Consumer, []byte, error) {
	if err := requireLen(buf, 1); err != nil {
		return contracts.Consumer{}, nil, err
	}
	kind, err := contracts.ConsumerKindFromCode(buf[0])
	if err != nil {
		return contracts.Consumer{}, nil, err
	}
	id, rest, err := ParseIdentifier(buf[1:])
	if err != nil {
		return contracts.Consumer{}, nil, err
	}
	return contracts.Consumer{Kind: kind, ID: id}, rest, nil
}

// SerializePollingStrategy writes the one kind byte followed by an 8-byte
// little-endian value (zero when the kind carries no data).
func SerializePollingStrategy(p contracts.PollingStrategy) []byte {
	buf := make([]byte, p.SizeInBytes())
	buf[0] = byte(p.Kind)
	putUint64(buf[1:9], p.Value)
	return buf
}

// ParsePollingStrategy reads one PollingStrategy off the front of buf.
func ParsePollingStrategy(buf []byte) (contracts.PollingStrategy, []byte, error) {
	if err := requireLen(buf, 9); err != nil {
		return contracts.PollingStrategy{}, nil, err
	}
	p := contracts.PollingStrategy{Kind: contracts.PollingStrategyKind(buf[0]), Value: getUint64(buf[1:9])}
	if err := p.Validate(); err != nil {
		return contracts.PollingStrategy{}, nil, err
	}
	return p, buf[9:], nil
}
