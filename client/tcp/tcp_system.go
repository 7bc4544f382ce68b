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

func (t *NimbusTcpClient) Ping(ctx context.Context) error {
	_, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodePing)
	return err
}

func (t *NimbusTcpClient) GetStats(ctx context.Context) (*contracts.Stats, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetStats)
	if err != nil {
		return nil, err
	}
	stats, err := binaryserialization.DeserializeStats(buf)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (t *NimbusTcpClient) GetMe(ctx context.Context) (*contracts.ClientInfoDetails, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetMe)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeClient(buf)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (t *NimbusTcpClient) GetClient(ctx context.Context, clientID uint32) (*contracts.ClientInfoDetails, error) {
	cmd := contracts.GetClient{ClientID: clientID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetClient(cmd), contracts.CodeGetClient)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeClient(buf)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (t *NimbusTcpClient) GetClients(ctx context.Context) ([]contracts.ClientInfo, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetClients)
	if err != nil {
		return nil, err
	}
	return binaryserialization.DeserializeClients(buf)
}
