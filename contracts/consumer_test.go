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
	"errors"
	"testing"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

func TestConsumerKindFromCode(t *testing.T) {
	if k, err := ConsumerKindFromCode(1); err != nil || k != ConsumerIndividual {
		t.Fatalf("code 1: got %v, %v", k, err)
	}
	if k, err := ConsumerKindFromCode(2); err != nil || k != ConsumerGroupKind {
		t.Fatalf("code 2: got %v, %v", k, err)
	}
	if _, err := ConsumerKindFromCode(3); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("unknown code should be InvalidCommand, got %v", err)
	}
}

func TestConsumerValidate(t *testing.T) {
	c := NewConsumer(NumericIdentifier(1))
	if err := c.Validate(); err != nil {
		t.Fatalf("individual consumer should validate: %v", err)
	}
	g := NewGroupConsumer(NumericIdentifier(1))
	if err := g.Validate(); err != nil {
		t.Fatalf("group consumer should validate: %v", err)
	}
	bad := Consumer{Kind: ConsumerKind(9), ID: NumericIdentifier(1)}
	if err := bad.Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("unknown kind should be InvalidCommand, got %v", err)
	}
}

func TestConsumerSizeInBytes(t *testing.T) {
	c := NewConsumer(NumericIdentifier(1))
	if c.SizeInBytes() != 1+c.ID.SizeInBytes() {
		t.Fatalf("got %d, want %d", c.SizeInBytes(), 1+c.ID.SizeInBytes())
	}
}

func TestPollingStrategyValidate(t *testing.T) {
	ok := []PollingStrategy{
		PollingStrategyOffset(5),
		PollingStrategyTimestamp(5),
		PollingStrategyFirst(),
		PollingStrategyLast(),
		PollingStrategyNext(),
	}
	for _, p := range ok {
		if err := p.Validate(); err != nil {
			t.Errorf("%+v should validate: %v", p, err)
		}
	}
}

func TestPollingStrategyRejectsStrayValueOnDataless(t *testing.T) {
	p := PollingStrategy{Kind: PollingFirst, Value: 1}
	if err := p.Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("expected InvalidCommand, got %v", err)
	}
}

func TestPollingStrategyRejectsUnknownKind(t *testing.T) {
	p := PollingStrategy{Kind: PollingStrategyKind(9)}
	if err := p.Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("expected InvalidCommand, got %v", err)
	}
}

func TestPollingStrategySizeInBytesConstant(t *testing.T) {
	if PollingStrategyFirst().SizeInBytes() != 9 {
		t.Fatal("polling strategy must always be 9 bytes on the wire")
	}
}
