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

// CreateStream creates a new stream. StreamID is optional; when supplied
// it must be non-zero.
type CreateStream struct {
	StreamID *uint32
	Name     string
}

func (c CreateStream) Validate() error {
	if c.StreamID != nil && *c.StreamID == 0 {
		return perr.InvalidIdentifier
	}
	if len(c.Name) == 0 || len(c.Name) > MaxNameLength {
		return perr.InvalidStreamName
	}
	return nil
}

// DeleteStream deletes an existing stream.
type DeleteStream struct {
	StreamID Identifier
}

func (c DeleteStream) Validate() error { return c.StreamID.Validate() }

// GetStream fetches one stream's details.
type GetStream struct {
	StreamID Identifier
}

func (c GetStream) Validate() error { return c.StreamID.Validate() }

// GetStreams lists every stream. It has no payload.
type GetStreams struct{}

func (GetStreams) Validate() error { return nil }

// UpdateStream renames a stream.
type UpdateStream struct {
	StreamID Identifier
	Name     string
}

func (c UpdateStream) Validate() error {
	if err := c.StreamID.Validate(); err != nil {
		return err
	}
	if len(c.Name) == 0 || len(c.Name) > MaxNameLength {
		return perr.InvalidStreamName
	}
	return nil
}

// PurgeStream removes all messages from every topic in a stream without
// deleting the stream itself.
type PurgeStream struct {
	StreamID Identifier
}

func (c PurgeStream) Validate() error { return c.StreamID.Validate() }
