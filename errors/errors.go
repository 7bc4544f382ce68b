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

// Package perr defines the flat error taxonomy shared by command
// constructors, validators and parsers. Every error detected while
// building, validating or parsing a command is one of these values.
package perr

import "fmt"

// ProtocolError is a stable, numbered protocol error. Code is part of the
// wire contract (it travels back from the server as the 4-byte status in
// a response frame) so it must never be renumbered once published.
type ProtocolError struct {
	Code    uint32
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// Is allows errors.Is(err, perr.InvalidCommand) to match by code, so a
// freshly-constructed ProtocolError with the same code compares equal to
// the sentinel even when it is a different pointer.
func (e *ProtocolError) Is(target error) bool {
	other, ok := target.(*ProtocolError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

var (
	InvalidCommand = &ProtocolError{Code: 4, Message: "invalid_command"}

	InvalidIdentifier        = &ProtocolError{Code: 6, Message: "invalid_identifier"}
	InvalidStreamName        = &ProtocolError{Code: 1001, Message: "invalid_stream_name"}
	InvalidTopicName         = &ProtocolError{Code: 2001, Message: "invalid_topic_name"}
	InvalidConsumerGroupName = &ProtocolError{Code: 5001, Message: "invalid_consumer_group_name"}
	InvalidUserName          = &ProtocolError{Code: 6001, Message: "invalid_username"}
	InvalidPassword          = &ProtocolError{Code: 6002, Message: "invalid_password"}

	InvalidHeaderKey   = &ProtocolError{Code: 4030, Message: "invalid_header_key"}
	InvalidHeaderValue = &ProtocolError{Code: 4031, Message: "invalid_header_value"}

	InvalidKeyValueLength = &ProtocolError{Code: 4010, Message: "invalid_key_value_length"}

	InvalidMessagesCount        = &ProtocolError{Code: 4009, Message: "invalid_messages_count"}
	EmptyMessagePayload         = &ProtocolError{Code: 4020, Message: "empty_message_payload"}
	InvalidMessagePayloadLength = &ProtocolError{Code: 4025, Message: "invalid_message_payload_length"}
	TooBigMessagePayload        = &ProtocolError{Code: 4022, Message: "too_big_message_payload"}
	TooBigHeadersPayload        = &ProtocolError{Code: 4017, Message: "too_big_headers_payload"}

	InvalidOffset            = &ProtocolError{Code: 4040, Message: "invalid_offset"}
	InvalidReplicationFactor = &ProtocolError{Code: 2020, Message: "invalid_replication_factor"}
	InvalidPartitionsCount   = &ProtocolError{Code: 2021, Message: "invalid_partitions_count"}
	InvalidMessageExpiry     = &ProtocolError{Code: 2022, Message: "invalid_message_expiry"}
	InvalidMaxTopicSize      = &ProtocolError{Code: 2023, Message: "invalid_max_topic_size"}

	ResourceNotFound      = &ProtocolError{Code: 20, Message: "resource_not_found"}
	StreamIDNotFound      = &ProtocolError{Code: 1009, Message: "stream_id_not_found"}
	TopicIDNotFound       = &ProtocolError{Code: 2010, Message: "topic_id_not_found"}
	ConsumerGroupNotFound = &ProtocolError{Code: 5000, Message: "consumer_group_not_found"}
)

// TransportError wraps a failure that occurred below the command layer —
// a timeout, a closed connection, a framing error detected by the
// transport. It is deliberately not a ProtocolError: the command layer
// never assigns it a protocol status code.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FromStatusCode maps a response's 4-byte status code back to a
// ProtocolError. A status the client does not recognize (e.g. a newer
// server's error the client predates) still surfaces as a ProtocolError
// so callers can use errors.Is uniformly; only its Message is generic.
func FromStatusCode(code uint32) error {
	if code == 0 {
		return nil
	}
	for _, candidate := range knownErrors {
		if candidate.Code == code {
			return candidate
		}
	}
	return &ProtocolError{Code: code, Message: "unknown_server_error"}
}

var knownErrors = []*ProtocolError{
	InvalidCommand,
	InvalidIdentifier,
	InvalidStreamName,
	InvalidTopicName,
	InvalidConsumerGroupName,
	InvalidUserName,
	InvalidPassword,
	InvalidHeaderKey,
	InvalidHeaderValue,
	InvalidKeyValueLength,
	InvalidMessagesCount,
	EmptyMessagePayload,
	InvalidMessagePayloadLength,
	TooBigMessagePayload,
	TooBigHeadersPayload,
	InvalidOffset,
	InvalidReplicationFactor,
	InvalidPartitionsCount,
	InvalidMessageExpiry,
	InvalidMaxTopicSize,
	ResourceNotFound,
	StreamIDNotFound,
	TopicIDNotFound,
	ConsumerGroupNotFound,
}
