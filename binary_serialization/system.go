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

// SerializePing writes nothing; Ping has no payload.
func SerializePing(contracts.Ping) []byte { return []byte{} }

// ParsePing requires an empty buffer.
func ParsePing(buf []byte) (contracts.Ping, error) {
	if len(buf) != 0 {
		return contracts.Ping{}, errInvalidCommand
	}
	return contracts.Ping{}, nil
}

// SerializeGetStats writes nothing; GetStats has no payload.
func SerializeGetStats(contracts.GetStats) []byte { return []byte{} }

// ParseGetStats requires an empty buffer.
func ParseGetStats(buf []byte) (contracts.GetStats, error) {
	if len(buf) != 0 {
		return contracts.GetStats{}, errInvalidCommand
	}
	return contracts.GetStats{}, nil
}

// SerializeGetMe writes nothing; GetMe has no payload.
func SerializeGetMe(contracts.GetMe) []byte { return []byte{} }

// ParseGetMe requires an empty buffer.
func ParseGetMe(buf []byte) (contracts.GetMe, error) {
	if len(buf) != 0 {
		return contracts.GetMe{}, errInvalidCommand
	}
	return contracts.GetMe{}, nil
}

// SerializeGetClient writes the numeric client id (u32).
func SerializeGetClient(c contracts.GetClient) []byte {
	buf := make([]byte, 4)
	putUint32(buf, c.ClientID)
	return buf
}

// ParseGetClient reconstructs a GetClient command.
func ParseGetClient(buf []byte) (contracts.GetClient, error) {
	if err := requireLen(buf, 4); err != nil {
		return contracts.GetClient{}, err
	}
	cmd := contracts.GetClient{ClientID: getUint32(buf[0:4])}
	if err := cmd.Validate(); err != nil {
		return contracts.GetClient{}, err
	}
	return cmd, nil
}

// SerializeGetClients writes nothing; GetClients has no payload.
func SerializeGetClients(contracts.GetClients) []byte { return []byte{} }

// ParseGetClients requires an empty buffer.
func ParseGetClients(buf []byte) (contracts.GetClients, error) {
	if len(buf) != 0 {
		return contracts.GetClients{}, errInvalidCommand
	}
	return contracts.GetClients{}, nil
}
