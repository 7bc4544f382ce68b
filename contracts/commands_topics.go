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

// CompressionAlgorithm selects how a topic's persisted messages are
// compressed by the server. The command layer only carries the selector;
// compression itself is a storage-engine concern.
type CompressionAlgorithm uint8

const (
	CompressionNone CompressionAlgorithm = 1
	CompressionGzip CompressionAlgorithm = 2
)

// CreateTopic creates a new topic within a stream.
type CreateTopic struct {
	StreamID          Identifier
	TopicID           *uint32
	PartitionsCount   uint32
	Compression       CompressionAlgorithm
	Name              string
	MessageExpiry     *uint32 // seconds, nil = never expires
	MaxTopicSize      *uint64 // bytes, nil = unbounded
	ReplicationFactor uint8
}

func (c CreateTopic) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if c.TopicID != nil && *c.TopicID == 0 {
		return perr.InvalidIdentifier
	}
	if len(c.Name) == 0 || len(c.Name) > MaxNameLength {
		return perr.InvalidTopicName
	}
	if c.PartitionsCount > MaxPartitionsCount {
		return perr.InvalidPartitionsCount
	}
	if c.ReplicationFactor < 1 {
		return perr.InvalidReplicationFactor
	}
	return nil
}

// DeleteTopic deletes an existing topic.
type DeleteTopic struct {
	StreamID Identifier
	TopicID  Identifier
}

func (c DeleteTopic) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}

// GetTopic fetches one topic's details.
type GetTopic struct {
	StreamID Identifier
	TopicID  Identifier
}

func (c GetTopic) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}

// GetTopics lists every topic in a stream.
type GetTopics struct {
	StreamID Identifier
}

func (c GetTopics) Validate() error { return c.StreamID.Validate() }

// UpdateTopic changes a topic's mutable settings.
type UpdateTopic struct {
	StreamID          Identifier
	TopicID           Identifier
	Compression       CompressionAlgorithm
	Name              string
	MessageExpiry     *uint32
	MaxTopicSize      *uint64
	ReplicationFactor uint8
}

func (c UpdateTopic) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if err := c.TopicID.Validate(); err != nil {
		return err
	}
	if len(c.Name) == 0 || len(c.Name) > MaxNameLength {
		return perr.InvalidTopicName
	}
	if c.ReplicationFactor < 1 {
		return perr.InvalidReplicationFactor
	}
	return nil
}

// PurgeTopic removes all messages from every partition of a topic.
type PurgeTopic struct {
	StreamID Identifier
	TopicID  Identifier
}

func (c PurgeTopic) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}
