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

package tcp

import (
	"context"

	binaryserialization "github.com/nimbusmq/nimbusmq/binary_serialization"
	"github.com/nimbusmq/nimbusmq/contracts"
)

func (t *NimbusTcpClient) CreateConsumerGroup(ctx context.Context, cmd contracts.CreateConsumerGroup) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeCreateConsumerGroup(cmd), contracts.CodeCreateConsumerGroup)
	return err
}

func (t *NimbusTcpClient) DeleteConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error {
	cmd := contracts.DeleteConsumerGroup{StreamID: streamID, TopicID: topicID, GroupID: groupID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeDeleteConsumerGroup(cmd), contracts.CodeDeleteConsumerGroup)
	return err
}

func (t *NimbusTcpClient) GetConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) (*contracts.ConsumerGroupInfo, error) {
	cmd := contracts.GetConsumerGroup{StreamID: streamID, TopicID: topicID, GroupID: groupID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetConsumerGroup(cmd), contracts.CodeGetConsumerGroup)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeConsumerGroup(buf)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (t *NimbusTcpClient) GetConsumerGroups(ctx context.Context, streamID, topicID contracts.Identifier) ([]contracts.ConsumerGroupInfo, error) {
	cmd := contracts.GetConsumerGroups{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetConsumerGroups(cmd), contracts.CodeGetConsumerGroups)
	if err != nil {
		return nil, err
	}
	return binaryserialization.DeserializeConsumerGroups(buf)
}

func (t *NimbusTcpClient) JoinConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error {
	cmd := contracts.JoinConsumerGroup{StreamID: streamID, TopicID: topicID, GroupID: groupID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeJoinConsumerGroup(cmd), contracts.CodeJoinConsumerGroup)
	return err
}

func (t *NimbusTcpClient) LeaveConsumerGroup(ctx context.Context, streamID, topicID, groupID contracts.Identifier) error {
	cmd := contracts.LeaveConsumerGroup{StreamID: streamID, TopicID: topicID, GroupID: groupID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeLeaveConsumerGroup(cmd), contracts.CodeLeaveConsumerGroup)
	return err
}
