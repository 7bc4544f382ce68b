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

// CreateConsumerGroup registers a new consumer group for a topic.
type CreateConsumerGroup struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  *uint32
	Name     string
}

func (c CreateConsumerGroup) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if err := c.TopicID.Validate(); err != nil {
		return err
	}
	if c.GroupID != nil && *c.GroupID == 0 {
		return perr.InvalidIdentifier
	}
	if len(c.Name) == 0 || len(c.Name) > MaxNameLength {
		return perr.InvalidConsumerGroupName
	}
	return nil
}

// DeleteConsumerGroup removes a consumer group.
type DeleteConsumerGroup struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  Identifier
}

func (c DeleteConsumerGroup) Validate() error {
	return validateStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// GetConsumerGroup fetches one consumer group's details.
type GetConsumerGroup struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  Identifier
}

func (c GetConsumerGroup) Validate() error {
	return validateStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// GetConsumerGroups lists every consumer group registered on a topic.
type GetConsumerGroups struct {
	StreamID Identifier
	TopicID  Identifier
}

func (c GetConsumerGroups) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	return c.TopicID.Validate()
}

// JoinConsumerGroup has the current connection's client join a consumer
// group, becoming eligible to be assigned partitions.
type JoinConsumerGroup struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  Identifier
}

func (c JoinConsumerGroup) Validate() error {
	return validateStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

// LeaveConsumerGroup has the current connection's client leave a consumer
// group it previously joined.
type LeaveConsumerGroup struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  Identifier
}

func (c LeaveConsumerGroup) Validate() error {
	return validateStreamTopicGroup(c.StreamID, c.TopicID, c.GroupID)
}

func validateStreamTopicGroup(streamID, topicID, groupID Identifier) error {
	if err := streamID.Validate(); err != nil {
		return err
	}
	if err := topicID.Validate(); err != nil {
		return err
	}
	return groupID.Validate()
}
