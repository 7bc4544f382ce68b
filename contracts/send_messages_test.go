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

import (
	"errors"
	"testing"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

func buildSendMessages(t *testing.T, messages ...Message) SendMessages {
	t.Helper()
	return SendMessages{
		StreamID:     NumericIdentifier(1),
		TopicID:      NumericIdentifier(2),
		Partitioning: Balanced(),
		Messages:     messages,
	}
}

func TestSendMessagesRejectsEmptyBatch(t *testing.T) {
	cmd := buildSendMessages(t)
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidMessagesCount) {
		t.Fatalf("expected InvalidMessagesCount, got %v", err)
	}
}

func TestSendMessagesRejectsAllEmptyPayloads(t *testing.T) {
	// Messages are built directly (bypassing Message.Validate) because the
	// batch-level walk is what must catch this, not the per-message check.
	cmd := buildSendMessages(t, Message{ID: NewMessageID(1)})
	if err := cmd.Validate(); !errors.Is(err, perr.EmptyMessagePayload) {
		t.Fatalf("expected EmptyMessagePayload, got %v", err)
	}
}

// Header bytes accumulate per-batch, not per-message.
func TestSendMessagesAccumulatesHeaderBytesPerBatch(t *testing.T) {
	key, err := NewHeaderKey("k")
	if err != nil {
		t.Fatalf("header key: %v", err)
	}
	value, err := NewRawHeaderValue(make([]byte, MaxUserHeadersSize/2+1))
	if err != nil {
		t.Fatalf("header value: %v", err)
	}
	headers := HeaderSet{key: value}

	m1, err := NewMessage(nil, []byte("a"), headers)
	if err != nil {
		t.Fatalf("m1: %v", err)
	}
	m2, err := NewMessage(nil, []byte("b"), headers)
	if err != nil {
		t.Fatalf("m2: %v", err)
	}

	cmd := buildSendMessages(t, m1, m2)
	if err := cmd.Validate(); !errors.Is(err, perr.TooBigHeadersPayload) {
		t.Fatalf("expected TooBigHeadersPayload from the combined batch, got %v", err)
	}
}

func TestSendMessagesAccumulatesPayloadBytesPerBatch(t *testing.T) {
	half := MaxPayloadSize/2 + 1
	m1, err := NewMessage(nil, make([]byte, half), nil)
	if err != nil {
		t.Fatalf("m1: %v", err)
	}
	m2, err := NewMessage(nil, make([]byte, half), nil)
	if err != nil {
		t.Fatalf("m2: %v", err)
	}
	cmd := buildSendMessages(t, m1, m2)
	if err := cmd.Validate(); !errors.Is(err, perr.TooBigMessagePayload) {
		t.Fatalf("expected TooBigMessagePayload, got %v", err)
	}
}

func TestSendMessagesAcceptsWellFormedBatch(t *testing.T) {
	m1, _ := MessageFromString("hello 1")
	id2 := NewMessageID(2)
	m2, _ := NewMessage(&id2, []byte("hello 2"), nil)
	id3 := NewMessageID(3)
	m3, _ := NewMessage(&id3, []byte("hello 3"), nil)

	cmd := SendMessages{
		StreamID:     NumericIdentifier(1),
		TopicID:      NumericIdentifier(2),
		Partitioning: PartitionID(4),
		Messages:     []Message{m1, m2, m3},
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("S5 batch should validate: %v", err)
	}
}
