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

func (t *NimbusTcpClient) CreatePersonalAccessToken(ctx context.Context, cmd contracts.CreatePersonalAccessToken) (*client.PersonalAccessTokenInfo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeCreatePersonalAccessToken(cmd), contracts.CodeCreatePersonalAccessToken)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeCreatePersonalAccessToken(buf)
	if err != nil {
		return nil, err
	}
	return &client.PersonalAccessTokenInfo{Name: info.Name, ExpiresAt: info.ExpiresAt, Token: info.Token}, nil
}

func (t *NimbusTcpClient) DeletePersonalAccessToken(ctx context.Context, name string) error {
	cmd := contracts.DeletePersonalAccessToken{Name: name}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeDeletePersonalAccessToken(cmd), contracts.CodeDeletePersonalAccessToken)
	return err
}

func (t *NimbusTcpClient) GetPersonalAccessTokens(ctx context.Context) ([]client.PersonalAccessTokenInfo, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetPersonalAccessTokens)
	if err != nil {
		return nil, err
	}
	tokens, err := binaryserialization.DeserializePersonalAccessTokens(buf)
	if err != nil {
		return nil, err
	}
	out := make([]client.PersonalAccessTokenInfo, len(tokens))
	for i, tk := range tokens {
		out[i] = client.PersonalAccessTokenInfo{Name: tk.Name, ExpiresAt: tk.ExpiresAt}
	}
	return out, nil
}

func (t *NimbusTcpClient) LoginWithPersonalAccessToken(ctx context.Context, token string) (*contracts.IdentityInfo, error) {
	cmd := contracts.LoginWithPersonalAccessToken{Token: token}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeLoginWithPersonalAccessToken(cmd), contracts.CodeLoginWithPersonalAccessTok)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeIdentityInfo(buf)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
