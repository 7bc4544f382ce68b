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
	"github.com/nimbusmq/nimbusmq/client"
	"github.com/nimbusmq/nimbusmq/contracts"
)

func (t *NimbusTcpClient) CreateTopic(ctx context.Context, cmd contracts.CreateTopic) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeCreateTopic(cmd), contracts.CodeCreateTopic)
	return err
}

func (t *NimbusTcpClient) DeleteTopic(ctx context.Context, streamID, topicID contracts.Identifier) error {
	cmd := contracts.DeleteTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeDeleteTopic(cmd), contracts.CodeDeleteTopic)
	return err
}

func (t *NimbusTcpClient) GetTopic(ctx context.Context, streamID, topicID contracts.Identifier) (*client.TopicDetails, error) {
	cmd := contracts.GetTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetTopic(cmd), contracts.CodeGetTopic)
	if err != nil {
		return nil, err
	}
	topic, err := binaryserialization.DeserializeTopic(buf)
	if err != nil {
		return nil, err
	}
	return toClientTopic(topic), nil
}

func (t *NimbusTcpClient) GetTopics(ctx context.Context, streamID contracts.Identifier) ([]client.TopicDetails, error) {
	cmd := contracts.GetTopics{StreamID: streamID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetTopics(cmd), contracts.CodeGetTopics)
	if err != nil {
		return nil, err
	}
	topics, err := binaryserialization.DeserializeTopics(buf)
	if err != nil {
		return nil, err
	}
	out := make([]client.TopicDetails, len(topics))
	for i, topic := range topics {
		out[i] = *toClientTopic(topic)
	}
	return out, nil
}

func (t *NimbusTcpClient) UpdateTopic(ctx context.Context, cmd contracts.UpdateTopic) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeUpdateTopic(cmd), contracts.CodeUpdateTopic)
	return err
}

func (t *NimbusTcpClient) PurgeTopic(ctx context.Context, streamID, topicID contracts.Identifier) error {
	cmd := contracts.PurgeTopic{StreamID: streamID, TopicID: topicID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializePurgeTopic(cmd), contracts.CodePurgeTopic)
	return err
}

func toClientTopic(t binaryserialization.TopicDetails) *client.TopicDetails {
	return &client.TopicDetails{
		ID:                t.ID,
		StreamID:          t.StreamID,
		Name:              t.Name,
		PartitionsCount:   t.PartitionsCount,
		MessagesCount:     t.MessagesCount,
		SizeBytes:         t.SizeBytes,
		MessageExpiry:     t.MessageExpiry,
		MaxTopicSize:      t.MaxTopicSize,
		ReplicationFactor: t.ReplicationFactor,
	}
}
