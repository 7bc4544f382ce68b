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

// SerializeSendMessages concatenates streamId || topicId || partitioning
// || messages, each message back-to-back in declared order.
func SerializeSendMessages(c contracts.SendMessages) []byte {
	buf := make([]byte, c.SizeInBytes())
	pos := 0
	pos += copy(buf[pos:], SerializeIdentifier(c.StreamID))
	pos += copy(buf[pos:], SerializeIdentifier(c.TopicID))
	pos += copy(buf[pos:], SerializePartitioning(c.Partitioning))
	for _, m := range c.Messages {
		pos += copy(buf[pos:], SerializeMessage(m))
	}
	return buf
}

// ParseSendMessages reconstructs a SendMessages command from its wire
// bytes and validates it before returning.
func ParseSendMessages(buf []byte) (contracts.SendMessages, error) {
	if err := requireLen(buf, 11); err != nil {
		return contracts.SendMessages{}, err
	}

	streamID, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.SendMessages{}, err
	}
	topicID, rest, err := ParseIdentifier(rest)
	if err != nil {
		return contracts.SendMessages{}, err
	}
	partitioning, rest, err := ParsePartitioning(rest)
	if err != nil {
		return contracts.SendMessages{}, err
	}

	var messages []contracts.Message
	for len(rest) > 0 {
		var m contracts.Message
		m, rest, err = ParseMessage(rest)
		if err != nil {
			return contracts.SendMessages{}, err
		}
		messages = append(messages, m)
	}

	cmd := contracts.SendMessages{
		StreamID:     streamID,
		TopicID:      topicID,
		Partitioning: partitioning,
		Messages:     messages,
	}
	if err := cmd.Validate(); err != nil {
		return contracts.SendMessages{}, err
	}
	return cmd, nil
}
