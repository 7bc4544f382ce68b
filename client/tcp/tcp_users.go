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

func (t *NimbusTcpClient) LoginUser(ctx context.Context, username, password string) (*contracts.IdentityInfo, error) {
	cmd := contracts.LoginUser{Username: username, Password: password}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeLoginUser(cmd), contracts.CodeLoginUser)
	if err != nil {
		return nil, err
	}
	info, err := binaryserialization.DeserializeIdentityInfo(buf)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (t *NimbusTcpClient) LogoutUser(ctx context.Context) error {
	_, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeLogoutUser)
	return err
}

func (t *NimbusTcpClient) CreateUser(ctx context.Context, cmd contracts.CreateUser) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeCreateUser(cmd), contracts.CodeCreateUser)
	return err
}

func (t *NimbusTcpClient) DeleteUser(ctx context.Context, userID contracts.Identifier) error {
	cmd := contracts.DeleteUser{UserID: userID}
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeDeleteUser(cmd), contracts.CodeDeleteUser)
	return err
}

func (t *NimbusTcpClient) UpdateUser(ctx context.Context, cmd contracts.UpdateUser) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeUpdateUser(cmd), contracts.CodeUpdateUser)
	return err
}

func (t *NimbusTcpClient) ChangePassword(ctx context.Context, cmd contracts.ChangePassword) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeChangePassword(cmd), contracts.CodeChangePassword)
	return err
}

func (t *NimbusTcpClient) UpdatePermissions(ctx context.Context, cmd contracts.UpdatePermissions) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	_, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeUpdatePermissions(cmd), contracts.CodeUpdatePermissions)
	return err
}

func (t *NimbusTcpClient) GetUser(ctx context.Context, userID contracts.Identifier) (*client.UserDetails, error) {
	cmd := contracts.GetUser{UserID: userID}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	buf, err := t.sendAndFetchResponse(ctx, binaryserialization.SerializeGetUser(cmd), contracts.CodeGetUser)
	if err != nil {
		return nil, err
	}
	u, err := binaryserialization.DeserializeUser(buf)
	if err != nil {
		return nil, err
	}
	return &client.UserDetails{ID: u.ID, Username: u.Username, Status: u.Status}, nil
}

func (t *NimbusTcpClient) GetUsers(ctx context.Context) ([]client.UserDetails, error) {
	buf, err := t.sendAndFetchResponse(ctx, []byte{}, contracts.CodeGetUsers)
	if err != nil {
		return nil, err
	}
	users, err := binaryserialization.DeserializeUsers(buf)
	if err != nil {
		return nil, err
	}
	out := make([]client.UserDetails, len(users))
	for i, u := range users {
		out[i] = client.UserDetails{ID: u.ID, Username: u.Username, Status: u.Status}
	}
	return out, nil
}
