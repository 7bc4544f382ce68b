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

// ConsumerKind distinguishes a lone consumer from one participating in a
// consumer group.
type ConsumerKind uint8

const (
	ConsumerIndividual ConsumerKind = 1
	ConsumerGroupKind  ConsumerKind = 2
)

// ConsumerKindFromCode maps a wire discriminant byte to a ConsumerKind.
func ConsumerKindFromCode(code uint8) (ConsumerKind, error) {
	switch ConsumerKind(code) {
	case ConsumerIndividual, ConsumerGroupKind:
		return ConsumerKind(code), nil
	default:
		return 0, perr.InvalidCommand
	}
}

// Consumer names who is polling: an individual consumer or a consumer
// group, identified either way by an Identifier.
type Consumer struct {
	Kind ConsumerKind
	ID   Identifier
}

// NewConsumer builds an individual Consumer.
func NewConsumer(id Identifier) Consumer {
	return Consumer{Kind: ConsumerIndividual, ID: id}
}

// NewGroupConsumer builds a Consumer referring to a consumer group.
func NewGroupConsumer(id Identifier) Consumer {
	return Consumer{Kind: ConsumerGroupKind, ID: id}
}

// SizeInBytes is the wire size: one kind byte plus the embedded
// identifier.
func (c Consumer) SizeInBytes() int { return 1 + c.ID.SizeInBytes() }

// Validate checks the kind and the embedded identifier.
func (c Consumer) Validate() error {
	switch c.Kind {
	case ConsumerIndividual, ConsumerGroupKind:
	default:
		return perr.InvalidCommand
	}
	return c.ID.Validate()
}
