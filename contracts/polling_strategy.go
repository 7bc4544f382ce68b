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

import perr "github.com/nimbusmq/nimbusmq/errors"

// PollingStrategyKind selects where in a partition a PollMessages call
// starts reading from.
type PollingStrategyKind uint8

const (
	PollingOffset    PollingStrategyKind = 1
	PollingTimestamp PollingStrategyKind = 2
	PollingFirst     PollingStrategyKind = 3
	PollingLast      PollingStrategyKind = 4
	PollingNext      PollingStrategyKind = 5
)

// PollingStrategy is a tagged union: Offset/Timestamp carry a uint64
// payload, First/Last/Next carry none (encoded as zero).
type PollingStrategy struct {
	Kind  PollingStrategyKind
	Value uint64
}

func PollingStrategyOffset(offset uint64) PollingStrategy {
	return PollingStrategy{Kind: PollingOffset, Value: offset}
}

func PollingStrategyTimestamp(timestamp uint64) PollingStrategy {
	return PollingStrategy{Kind: PollingTimestamp, Value: timestamp}
}

func PollingStrategyFirst() PollingStrategy { return PollingStrategy{Kind: PollingFirst} }
func PollingStrategyLast() PollingStrategy  { return PollingStrategy{Kind: PollingLast} }
func PollingStrategyNext() PollingStrategy  { return PollingStrategy{Kind: PollingNext} }

// SizeInBytes is always 9: one kind byte plus an 8-byte payload (zero
// when the kind carries no data).
func (PollingStrategy) SizeInBytes() int { return 9 }

// Validate checks the kind and, for First/Last/Next, that the unused
// value field is zero.
func (p PollingStrategy) Validate() error {
	switch p.Kind {
	case PollingOffset, PollingTimestamp:
		return nil
	case PollingFirst, PollingLast, PollingNext:
		if p.Value != 0 {
			return perr.InvalidCommand
		}
		return nil
	default:
		return perr.InvalidCommand
	}
}
