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
	MaxTokenNameLength = 255
)

// CreatePersonalAccessToken mints a new long-lived token for the current
// user, optionally expiring after a number of seconds.
type CreatePersonalAccessToken struct {
	Name            string
	ExpiryInSeconds *uint32
}

func (c CreatePersonalAccessToken) Validate() error {
	if len(c.Name) == 0 || len(c.Name) > MaxTokenNameLength {
		return perr.InvalidCommand
	}
	return nil
}

// DeletePersonalAccessToken revokes a named token belonging to the
// current user.
type DeletePersonalAccessToken struct {
	Name string
}

func (c DeletePersonalAccessToken) Validate() error {
	if len(c.Name) == 0 || len(c.Name) > MaxTokenNameLength {
		return perr.InvalidCommand
	}
	return nil
}

// GetPersonalAccessTokens lists the current user's tokens. It has no
// payload.
type GetPersonalAccessTokens struct{}

func (GetPersonalAccessTokens) Validate() error { return nil }

// LoginWithPersonalAccessToken authenticates using a previously minted
// token instead of a username/password pair.
type LoginWithPersonalAccessToken struct {
	Token string
}

func (c LoginWithPersonalAccessToken) Validate() error {
	if len(c.Token) == 0 {
		return perr.InvalidCommand
	}
	return nil
}

// IdentityInfo is the response to a successful login.
type IdentityInfo struct {
	UserID uint32
}
