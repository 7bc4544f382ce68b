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

// SerializeLoginUser writes username || password, each a u32-length-
// prefixed string.
func SerializeLoginUser(c contracts.LoginUser) []byte {
	buf := make([]byte, stringSize(c.Username)+stringSize(c.Password))
	pos := putString(buf, c.Username)
	putString(buf[pos:], c.Password)
	return buf
}

// ParseLoginUser reconstructs a LoginUser command.
func ParseLoginUser(buf []byte) (contracts.LoginUser, error) {
	username, rest, err := parseString(buf)
	if err != nil {
		return contracts.LoginUser{}, err
	}
	password, _, err := parseString(rest)
	if err != nil {
		return contracts.LoginUser{}, err
	}
	cmd := contracts.LoginUser{Username: username, Password: password}
	if err := cmd.Validate(); err != nil {
		return contracts.LoginUser{}, err
	}
	return cmd, nil
}

// SerializeLogoutUser writes nothing; LogoutUser has no payload.
func SerializeLogoutUser(contracts.LogoutUser) []byte { return []byte{} }

// ParseLogoutUser requires an empty buffer.
func ParseLogoutUser(buf []byte) (contracts.LogoutUser, error) {
	if len(buf) != 0 {
		return contracts.LogoutUser{}, errInvalidCommand
	}
	return contracts.LogoutUser{}, nil
}

// SerializeCreateUser writes username || password || status (1 byte) ||
// present flag for permissions || permissions bytes (u32-length-prefixed)
// when present.
func SerializeCreateUser(c contracts.CreateUser) []byte {
	base := stringSize(c.Username) + stringSize(c.Password) + 1
	permBytes := serializeOptionalPermissions(c.Permissions)
	buf := make([]byte, base+len(permBytes))
	pos := putString(buf, c.Username)
	pos += putString(buf[pos:], c.Password)
	buf[pos] = byte(c.Status)
	pos++
	copy(buf[pos:], permBytes)
	return buf
}

// ParseCreateUser reconstructs a CreateUser command.
func ParseCreateUser(buf []byte) (contracts.CreateUser, error) {
	username, rest, err := parseString(buf)
	if err != nil {
		return contracts.CreateUser{}, err
	}
	password, rest, err := parseString(rest)
	if err != nil {
		return contracts.CreateUser{}, err
	}
	if err := requireLen(rest, 1); err != nil {
		return contracts.CreateUser{}, err
	}
	status := contracts.UserStatus(rest[0])
	rest = rest[1:]
	perms, _, err := parseOptionalPermissions(rest)
	if err != nil {
		return contracts.CreateUser{}, err
	}
	cmd := contracts.CreateUser{Username: username, Password: password, Status: status, Permissions: perms}
	if err := cmd.Validate(); err != nil {
		return contracts.CreateUser{}, err
	}
	return cmd, nil
}

func serializeOptionalPermissions(p *contracts.Permissions) []byte {
	if p == nil {
		return []byte{0}
	}
	buf := make([]byte, 1+4+len(p.Bytes))
	buf[0] = 1
	putUint32(buf[1:5], uint32(len(p.Bytes)))
	copy(buf[5:], p.Bytes)
	return buf
}

func parseOptionalPermissions(buf []byte) (*contracts.Permissions, []byte, error) {
	if err := requireLen(buf, 1); err != nil {
		return nil, nil, err
	}
	if buf[0] == 0 {
		return nil, buf[1:], nil
	}
	if err := requireLen(buf[1:], 4); err != nil {
		return nil, nil, err
	}
	n := int(getUint32(buf[1:5]))
	if err := requireLen(buf[5:], n); err != nil {
		return nil, nil, err
	}
	value := make([]byte, n)
	copy(value, buf[5:5+n])
	return &contracts.Permissions{Bytes: value}, buf[5+n:], nil
}

// SerializeDeleteUser writes the target user identifier.
func SerializeDeleteUser(c contracts.DeleteUser) []byte {
	return SerializeIdentifier(c.UserID)
}

// ParseDeleteUser reconstructs a DeleteUser command.
func ParseDeleteUser(buf []byte) (contracts.DeleteUser, error) {
	id, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.DeleteUser{}, err
	}
	cmd := contracts.DeleteUser{UserID: id}
	if err := cmd.Validate(); err != nil {
		return contracts.DeleteUser{}, err
	}
	return cmd, nil
}

// SerializeGetUser writes the target user identifier.
func SerializeGetUser(c contracts.GetUser) []byte {
	return SerializeIdentifier(c.UserID)
}

// ParseGetUser reconstructs a GetUser command.
func ParseGetUser(buf []byte) (contracts.GetUser, error) {
	id, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.GetUser{}, err
	}
	cmd := contracts.GetUser{UserID: id}
	if err := cmd.Validate(); err != nil {
		return contracts.GetUser{}, err
	}
	return cmd, nil
}

// SerializeGetUsers writes nothing; GetUsers has no payload.
func SerializeGetUsers(contracts.GetUsers) []byte { return []byte{} }

// ParseGetUsers requires an empty buffer.
func ParseGetUsers(buf []byte) (contracts.GetUsers, error) {
	if len(buf) != 0 {
		return contracts.GetUsers{}, errInvalidCommand
	}
	return contracts.GetUsers{}, nil
}

// SerializeChangePassword writes userId || currentPassword ||
// newPassword.
func SerializeChangePassword(c contracts.ChangePassword) []byte {
	idBytes := SerializeIdentifier(c.UserID)
	buf := make([]byte, len(idBytes)+stringSize(c.CurrentPassword)+stringSize(c.NewPassword))
	pos := copy(buf, idBytes)
	pos += putString(buf[pos:], c.CurrentPassword)
	putString(buf[pos:], c.NewPassword)
	return buf
}

// ParseChangePassword reconstructs a ChangePassword command.
func ParseChangePassword(buf []byte) (contracts.ChangePassword, error) {
	id, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.ChangePassword{}, err
	}
	current, rest, err := parseString(rest)
	if err != nil {
		return contracts.ChangePassword{}, err
	}
	newPass, _, err := parseString(rest)
	if err != nil {
		return contracts.ChangePassword{}, err
	}
	cmd := contracts.ChangePassword{UserID: id, CurrentPassword: current, NewPassword: newPass}
	if err := cmd.Validate(); err != nil {
		return contracts.ChangePassword{}, err
	}
	return cmd, nil
}

// SerializeUpdateUser writes userId || present-flag+username ||
// present-flag+status (1 byte each when present).
func SerializeUpdateUser(c contracts.UpdateUser) []byte {
	idBytes := SerializeIdentifier(c.UserID)
	nameBytes := serializeOptionalString(c.Username)
	statusBytes := serializeOptionalByte(statusBytePtr(c.Status))

	buf := make([]byte, len(idBytes)+len(nameBytes)+len(statusBytes))
	pos := copy(buf, idBytes)
	pos += copy(buf[pos:], nameBytes)
	copy(buf[pos:], statusBytes)
	return buf
}

func statusBytePtr(s *contracts.UserStatus) *byte {
	if s == nil {
		return nil
	}
	b := byte(*s)
	return &b
}

// ParseUpdateUser reconstructs an UpdateUser command.
func ParseUpdateUser(buf []byte) (contracts.UpdateUser, error) {
	id, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.UpdateUser{}, err
	}
	username, rest, err := parseOptionalString(rest)
	if err != nil {
		return contracts.UpdateUser{}, err
	}
	statusByte, _, err := parseOptionalByte(rest)
	if err != nil {
		return contracts.UpdateUser{}, err
	}
	var status *contracts.UserStatus
	if statusByte != nil {
		s := contracts.UserStatus(*statusByte)
		status = &s
	}
	cmd := contracts.UpdateUser{UserID: id, Username: username, Status: status}
	if err := cmd.Validate(); err != nil {
		return contracts.UpdateUser{}, err
	}
	return cmd, nil
}

// SerializeUpdatePermissions writes userId || optional permissions.
func SerializeUpdatePermissions(c contracts.UpdatePermissions) []byte {
	idBytes := SerializeIdentifier(c.UserID)
	permBytes := serializeOptionalPermissions(c.Permissions)
	buf := make([]byte, len(idBytes)+len(permBytes))
	pos := copy(buf, idBytes)
	copy(buf[pos:], permBytes)
	return buf
}

// ParseUpdatePermissions reconstructs an UpdatePermissions command.
func ParseUpdatePermissions(buf []byte) (contracts.UpdatePermissions, error) {
	id, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.UpdatePermissions{}, err
	}
	perms, _, err := parseOptionalPermissions(rest)
	if err != nil {
		return contracts.UpdatePermissions{}, err
	}
	cmd := contracts.UpdatePermissions{UserID: id, Permissions: perms}
	if err := cmd.Validate(); err != nil {
		return contracts.UpdatePermissions{}, err
	}
	return cmd, nil
}

func serializeOptionalString(s *string) []byte {
	if s == nil {
		return []byte{0}
	}
	buf := make([]byte, 1+stringSize(*s))
	buf[0] = 1
	putString(buf[1:], *s)
	return buf
}

func parseOptionalString(buf []byte) (*string, []byte, error) {
	if err := requireLen(buf, 1); err != nil {
		return nil, nil, err
	}
	if buf[0] == 0 {
		return nil, buf[1:], nil
	}
	s, rest, err := parseString(buf[1:])
	if err != nil {
		return nil, nil, err
	}
	return &s, rest, nil
}

func serializeOptionalByte(b *byte) []byte {
	if b == nil {
		return []byte{0}
	}
	return []byte{1, *b}
}

func parseOptionalByte(buf []byte) (*byte, []byte, error) {
	if err := requireLen(buf, 1); err != nil {
		return nil, nil, err
	}
	if buf[0] == 0 {
		return nil, buf[1:], nil
	}
	if err := requireLen(buf[1:], 1); err != nil {
		return nil, nil, err
	}
	b := buf[1]
	return &b, buf[2:], nil
}
