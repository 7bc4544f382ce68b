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

// SendMessages ships a batch of messages to a topic, optionally targeting
// a specific partition via Partitioning.
type SendMessages struct {
	StreamID     Identifier
	TopicID      Identifier
	Partitioning Partitioning
	Messages     []Message
}

// Validate runs the batch-level checks in order: empty batch, then
// partitioning shape, then a single walk over the messages that
// accumulates header bytes per-batch (not per-message) and payload bytes
// per-batch, finally rejecting an all-empty-payload batch.
func (c SendMessages) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if err := c.TopicID.Validate(); err != nil {
		return err
	}
	if len(c.Messages) == 0 {
		return perr.InvalidMessagesCount
	}

	keyValueLength := len(c.Partitioning.Value)
	if keyValueLength > 255 || (c.Partitioning.Kind != PartitioningBalanced && keyValueLength == 0) {
		return perr.InvalidKeyValueLength
	}

	var headersSize, payloadSize uint64
	for _, m := range c.Messages {
		for _, v := range m.Headers {
			headersSize += uint64(len(v.Value))
			if headersSize > MaxUserHeadersSize {
				return perr.TooBigHeadersPayload
			}
		}
		payloadSize += uint64(len(m.Payload))
		if payloadSize > MaxPayloadSize {
			return perr.TooBigMessagePayload
		}
	}

	if payloadSize == 0 {
		return perr.EmptyMessagePayload
	}
	return nil
}

// SizeInBytes is the wire size: the two identifiers, the partitioning
// descriptor, and every message back-to-back.
func (c SendMessages) SizeInBytes() int {
	size := c.StreamID.SizeInBytes() + c.TopicID.SizeInBytes() + c.Partitioning.SizeInBytes()
	for _, m := range c.Messages {
		size += m.SizeInBytes()
	}
	return size
}

// PollMessages requests a batch of messages from a topic for a consumer
// (individual or group).
type PollMessages struct {
	Consumer    Consumer
	StreamID    Identifier
	TopicID     Identifier
	PartitionID *uint32
	Strategy    PollingStrategy
	Count       uint32
	AutoCommit  bool
}

func (c PollMessages) Validate() error {
	if err := c.Consumer.Validate(); err != nil {
		return err
	}
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if err := c.TopicID.Validate(); err != nil {
		return err
	}
	if err := c.Strategy.Validate(); err != nil {
		return err
	}
	if c.Count == 0 {
		return perr.InvalidCommand
	}
	return nil
}

// StoreConsumerOffset persists a consumer's position in a partition.
type StoreConsumerOffset struct {
	Consumer    Consumer
	StreamID    Identifier
	TopicID     Identifier
	PartitionID *uint32
	Offset      uint64
}

func (c StoreConsumerOffset) Validate() error {
	if err := c.Consumer.Validate(); err != nil {
		return err
	}
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}

// GetConsumerOffset fetches a consumer's last stored position in a
// partition.
type GetConsumerOffset struct {
	Consumer    Consumer
	StreamID    Identifier
	TopicID     Identifier
	PartitionID *uint32
}

func (c GetConsumerOffset) Validate() error {
	if err := c.Consumer.Validate(); err != nil {
		return err
	}
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}

// PolledMessage pairs a wire Message with the partition metadata the
// server attaches once it has been appended to a log segment.
type PolledMessage struct {
	Offset    uint64
	Timestamp uint64
	Message   Message
}

// PolledMessages is the response payload to PollMessages.
type PolledMessages struct {
	PartitionID   uint32
	CurrentOffset uint64
	Messages      []PolledMessage
}
