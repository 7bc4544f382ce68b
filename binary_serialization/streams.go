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

// SerializeCreateStream writes the optional stream id followed by the
// name.
func SerializeCreateStream(c contracts.CreateStream) []byte {
	idBytes := optionalUint32(c.StreamID)
	buf := make([]byte, len(idBytes)+stringSize(c.Name))
	pos := copy(buf, idBytes)
	putString(buf[pos:], c.Name)
	return buf
}

// ParseCreateStream reconstructs a CreateStream command and validates it.
func ParseCreateStream(buf []byte) (contracts.CreateStream, error) {
	id, rest, err := parseOptionalUint32(buf)
	if err != nil {
		return contracts.CreateStream{}, err
	}
	name, _, err := parseString(rest)
	if err != nil {
		return contracts.CreateStream{}, err
	}
	cmd := contracts.CreateStream{StreamID: id, Name: name}
	if err := cmd.Validate(); err != nil {
		return contracts.CreateStream{}, err
	}
	return cmd, nil
}

// SerializeDeleteStream writes the target stream identifier.
func SerializeDeleteStream(c contracts.DeleteStream) []byte {
	return SerializeIdentifier(c.StreamID)
}

// ParseDeleteStream reconstructs a DeleteStream command.
func ParseDeleteStream(buf []byte) (contracts.DeleteStream, error) {
	id, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.DeleteStream{}, err
	}
	cmd := contracts.DeleteStream{StreamID: id}
	if err := cmd.Validate(); err != nil {
		return contracts.DeleteStream{}, err
	}
	return cmd, nil
}

// SerializeGetStream writes the target stream identifier.
func SerializeGetStream(c contracts.GetStream) []byte {
	return SerializeIdentifier(c.StreamID)
}

// ParseGetStream reconstructs a GetStream command.
func ParseGetStream(buf []byte) (contracts.GetStream, error) {
	id, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.GetStream{}, err
	}
	cmd := contracts.GetStream{StreamID: id}
	if err := cmd.Validate(); err != nil {
		return contracts.GetStream{}, err
	}
	return cmd, nil
}

// SerializeGetStreams writes nothing; GetStreams has no payload.
func SerializeGetStreams(contracts.GetStreams) []byte { return []byte{} }

// ParseGetStreams requires an empty buffer.
func ParseGetStreams(buf []byte) (contracts.GetStreams, error) {
	if len(buf) != 0 {
		return contracts.GetStreams{}, errInvalidCommand
	}
	return contracts.GetStreams{}, nil
}

// SerializeUpdateStream writes the stream identifier followed by the new
// name.
func SerializeUpdateStream(c contracts.UpdateStream) []byte {
	idBytes := SerializeIdentifier(c.StreamID)
	buf := make([]byte, len(idBytes)+stringSize(c.Name))
	pos := copy(buf, idBytes)
	putString(buf[pos:], c.Name)
	return buf
}

// ParseUpdateStream reconstructs an UpdateStream command.
func ParseUpdateStream(buf []byte) (contracts.UpdateStream, error) {
	id, rest, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.UpdateStream{}, err
	}
	name, _, err := parseString(rest)
	if err != nil {
		return contracts.UpdateStream{}, err
	}
	cmd := contracts.UpdateStream{StreamID: id, Name: name}
	if err := cmd.Validate(); err != nil {
		return contracts.UpdateStream{}, err
	}
	return cmd, nil
}

// SerializePurgeStream writes the target stream identifier.
func SerializePurgeStream(c contracts.PurgeStream) []byte {
	return SerializeIdentifier(c.StreamID)
}

// ParsePurgeStream reconstructs a PurgeStream command.
func ParsePurgeStream(buf []byte) (contracts.PurgeStream, error) {
	id, _, err := ParseIdentifier(buf)
	if err != nil {
		return contracts.PurgeStream{}, err
	}
	cmd := contracts.PurgeStream{StreamID: id}
	if err := cmd.Validate(); err != nil {
		return contracts.PurgeStream{}, err
	}
	return cmd, nil
}
