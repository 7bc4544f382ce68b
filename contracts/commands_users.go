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

const (
	MinUserNameLength = 3
	MaxUserNameLength = 50
	MinPasswordLength = 3
	MaxPasswordLength = 50
)

// UserStatus is the account state carried by CreateUser/UpdateUser.
type UserStatus uint8

const (
	UserActive   UserStatus = 1
	UserInactive UserStatus = 2
)

// Permissions is an opaque, server-interpreted permission set; the
// command layer only carries its serialized bytes.
type Permissions struct {
	Bytes []byte
}

// LoginUser authenticates with a username and cleartext password. The
// transport is responsible for confidentiality.
type LoginUser struct {
	Username string
	Password string
}

func (c LoginUser) Validate() error {
	if len(c.Username) < MinUserNameLength || len(c.Username) > MaxUserNameLength {
		return perr.InvalidUserName
	}
	if len(c.Password) < MinPasswordLength || len(c.Password) > MaxPasswordLength {
		return perr.InvalidPassword
	}
	return nil
}

// LogoutUser ends the current session. It has no payload.
type LogoutUser struct{}

func (LogoutUser) Validate() error { return nil }

// CreateUser provisions a new user account.
type CreateUser struct {
	Username    string
	Password    string
	Status      UserStatus
	Permissions *Permissions
}

func (c CreateUser) Validate() error {
	if len(c.Username) < MinUserNameLength || len(c.Username) > MaxUserNameLength {
		return perr.InvalidUserName
	}
	if len(c.Password) < MinPasswordLength || len(c.Password) > MaxPasswordLength {
		return perr.InvalidPassword
	}
	return nil
}

// DeleteUser removes a user account.
type DeleteUser struct {
	UserID Identifier
}

func (c DeleteUser) Validate() error { return c.UserID.Validate() }

// UpdateUser changes a user's username and/or status.
type UpdateUser struct {
	UserID   Identifier
	Username *string
	Status   *UserStatus
}

func (c UpdateUser) Validate() error {
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	if c.Username != nil && (len(*c.Username) < MinUserNameLength || len(*c.Username) > MaxUserNameLength) {
		return perr.InvalidUserName
	}
	return nil
}

// ChangePassword updates a user's password, verifying the current one.
type ChangePassword struct {
	UserID          Identifier
	CurrentPassword string
	NewPassword     string
}

func (c ChangePassword) Validate() error {
	if err := c.UserID.Validate(); err != nil {
		return err
	}
	if len(c.NewPassword) < MinPasswordLength || len(c.NewPassword) > MaxPasswordLength {
		return perr.InvalidPassword
	}
	return nil
}

// UpdatePermissions replaces a user's permission set.
type UpdatePermissions struct {
	UserID      Identifier
	Permissions *Permissions
}

func (c UpdatePermissions) Validate() error { return c.UserID.Validate() }

// GetUser fetches one user's details.
type GetUser struct {
	UserID Identifier
}

func (c GetUser) Validate() error { return c.UserID.Validate() }

// GetUsers lists every user. It has no payload.
type GetUsers struct{}

func (GetUsers) Validate() error { return nil }
