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

// SerializeCreatePersonalAccessToken writes name || optional expiry
// (seconds).
func SerializeCreatePersonalAccessToken(c contracts.CreatePersonalAccessToken) []byte {
	nameBytes := make([]byte, stringSize(c.Name))
	putString(nameBytes, c.Name)
	expiryBytes := optionalUint32(c.ExpiryInSeconds)
	buf := make([]byte, len(nameBytes)+len(expiryBytes))
	pos := copy(buf, nameBytes)
	copy(buf[pos:], expiryBytes)
	return buf
}

// ParseCreatePersonalAccessToken reconstructs a
// CreatePersonalAccessToken command.
func ParseCreatePersonalAccessToken(buf []byte) (contracts.CreatePersonalAccessToken, error) {
	name, rest, err := parseString(buf)
	if err != nil {
		return contracts.CreatePersonalAccessToken{}, err
	}
	expiry, _, err := parseOptionalUint32(rest)
	if err != nil {
		return contracts.CreatePersonalAccessToken{}, err
	}
	cmd := contracts.CreatePersonalAccessToken{Name: name, ExpiryInSeconds: expiry}
	if err := cmd.Validate(); err != nil {
		return contracts.CreatePersonalAccessToken{}, err
	}
	return cmd, nil
}

// SerializeDeletePersonalAccessToken writes the token name.
func SerializeDeletePersonalAccessToken(c contracts.DeletePersonalAccessToken) []byte {
	buf := make([]byte, stringSize(c.Name))
	putString(buf, c.Name)
	return buf
}

// ParseDeletePersonalAccessToken reconstructs a
// DeletePersonalAccessToken command.
func ParseDeletePersonalAccessToken(buf []byte) (contracts.DeletePersonalAccessToken, error) {
	name, _, err := parseString(buf)
	if err != nil {
		return contracts.DeletePersonalAccessToken{}, err
	}
	cmd := contracts.DeletePersonalAccessToken{Name: name}
	if err := cmd.Validate(); err != nil {
		return contracts.DeletePersonalAccessToken{}, err
	}
	return cmd, nil
}

// SerializeGetPersonalAccessTokens writes nothing; it has no payload.
func SerializeGetPersonalAccessTokens(contracts.GetPersonalAccessTokens) []byte { return []byte{} }

// ParseGetPersonalAccessTokens requires an empty buffer.
func ParseGetPersonalAccessTokens(buf []byte) (contracts.GetPersonalAccessTokens, error) {
	if len(buf) != 0 {
		return contracts.GetPersonalAccessTokens{}, errInvalidCommand
	}
	return contracts.GetPersonalAccessTokens{}, nil
}

// SerializeLoginWithPersonalAccessToken writes the token string.
func SerializeLoginWithPersonalAccessToken(c contracts.LoginWithPersonalAccessToken) []byte {
	buf := make([]byte, stringSize(c.Token))
	putString(buf, c.Token)
	return buf
}

// ParseLoginWithPersonalAccessToken reconstructs a
// LoginWithPersonalAccessToken command.
func ParseLoginWithPersonalAccessToken(buf []byte) (contracts.LoginWithPersonalAccessToken, error) {
	token, _, err := parseString(buf)
	if err != nil {
		return contracts.LoginWithPersonalAccessToken{}, err
	}
	cmd := contracts.LoginWithPersonalAccessToken{Token: token}
	if err := cmd.Validate(); err != nil {
		return contracts.LoginWithPersonalAccessToken{}, err
	}
	return cmd, nil
}
