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

// Ping is the heartbeat command; it carries no payload and expects an
// empty acknowledgement.
type Ping struct{}

func (Ping) Validate() error { return nil }

// GetStats requests server-wide runtime statistics. It has no payload.
type GetStats struct{}

func (GetStats) Validate() error { return nil }

// GetMe requests the details of the client issuing the request. It has
// no payload.
type GetMe struct{}

func (GetMe) Validate() error { return nil }

// GetClient fetches details of one connected client by its numeric,
// transport-assigned id.
type GetClient struct {
	ClientID uint32
}

func (c GetClient) Validate() error {
	if c.ClientID == 0 {
		return perr.InvalidIdentifier
	}
	return nil
}

// GetClients lists every connected client. It has no payload.
type GetClients struct{}

func (GetClients) Validate() error { return nil }

// Stats is the response payload to GetStats: a representative subset of
// server-wide runtime counters. The full set is a storage/server concern
// out of this module's scope; these are the fields every command-layer
// caller can rely on.
type Stats struct {
	ProcessID           uint32
	StreamsCount        uint32
	TopicsCount         uint32
	PartitionsCount     uint32
	MessagesCount       uint64
	ClientsCount        uint32
	ConsumerGroupsCount uint32
}

// ClientInfo is the summary row returned by GetClients.
type ClientInfo struct {
	ClientID      uint32
	UserID        *uint32
	Address       string
	TransportName string
}

// ClientInfoDetails is the detailed row returned by GetClient, adding the
// consumer groups the client has joined.
type ClientInfoDetails struct {
	ClientInfo
	ConsumerGroups []ConsumerGroupInfo
}

// ConsumerGroupInfo names a consumer group a client participates in.
type ConsumerGroupInfo struct {
	StreamID Identifier
	TopicID  Identifier
	GroupID  Identifier
}
