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

func (t *NimbusTcpClient) CreateStream(ctx context.Context, cmd contracts.CreateStream) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeCreateStream(cmd), contracts.CodeCreateStream)
	return err
}

func (t *NimbusTcpClient) DeleteStream(ctx context.Context, id contracts.Identifier) error {
	if err := id.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeIdentifier(id), contracts.CodeDeleteStream)
	return err
}

func (t *NimbusTcpClient) GetStream(ctx context.Context, id contracts.Identifier) (*client.StreamDetails, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeIdentifier(id), contracts.CodeGetStream)
	if err != nil {
		return nil, err
	}
	s, err := binaryserialization.DeserializeStream(buf)
	if err != nil {
		return nil, err
	}
	return &client.StreamDetails{ID: s.ID, Name: s.Name, TopicsCount: s.TopicsCount, MessagesCount: s.MessagesCount, SizeBytes: s.SizeBytes}, nil
}

func (t *NimbusTcpClient) GetStreams(ctx context.Context) ([]client.StreamDetails, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetStreams)
	if err != nil {
		return nil, err
	}
	streams, err := binaryserialization.DeserializeStreams(buf)
	if err != nil {
		return nil, err
	}
	out := make([]client.StreamDetails, len(streams))
	for i, s := range streams {
		out[i] = client.StreamDetails{ID: s.ID, Name: s.Name, TopicsCount: s.TopicsCount, MessagesCount: s.MessagesCount, SizeBytes: s.SizeBytes}
	}
	return out, nil
}

func (t *NimbusTcpClient) UpdateStream(ctx context.Context, cmd contracts.UpdateStream) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeUpdateStream(cmd), contracts.CodeUpdateStream)
	return err
}

func (t *NimbusTcpClient) PurgeStream(ctx context.Context, id contracts.Identifier) error {
	if err := id.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeIdentifier(id), contracts.CodePurgeStream)
	return err
}
