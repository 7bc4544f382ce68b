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
	"errors"
	"testing"

	"github.com/nimbusmq/nimbusmq/contracts"
	perr "github.com/nimbusmq/nimbusmq/errors"
)

func TestIdentifierRoundTrip(t *testing.T) {
	cases := []contracts.Identifier{
		contracts.NumericIdentifier(1),
		contracts.NumericIdentifier(0),
	}
	named, err := contracts.NamedIdentifier("stream-a")
	if err != nil {
		t.Fatal(err)
	}
	cases = append(cases, named)

	for _, id := range cases {
		buf := SerializeIdentifier(id)
		if len(buf) != id.SizeInBytes() {
			t.Fatalf("length discipline: got %d, want %d", len(buf), id.SizeInBytes())
		}
		got, rest, err := ParseIdentifier(buf)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(rest) != 0 {
			t.Fatalf("unexpected trailing bytes: %d", len(rest))
		}
		if !got.Equal(id) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, id)
		}
	}
}

func TestParseIdentifierRejectsShortBuffer(t *testing.T) {
	if _, _, err := ParseIdentifier([]byte{1}); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("expected InvalidCommand for short buffer, got %v", err)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	m, err := contracts.MessageFromString("hello 1")
	if err != nil {
		t.Fatal(err)
	}
	buf := SerializeMessage(m)
	if len(buf) != m.SizeInBytes() {
		t.Fatalf("length discipline: got %d, want %d", len(buf), m.SizeInBytes())
	}
	got, rest, err := ParseMessage(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected trailing bytes: %d", len(rest))
	}
	if string(got.Payload) != "hello 1" || !got.ID.IsZero() {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestPartitioningRoundTrip(t *testing.T) {
	cases := []contracts.Partitioning{
		contracts.Balanced(),
		contracts.PartitionID(4),
	}
	key, err := contracts.MessagesKeyStr("hello world")
	if err != nil {
		t.Fatal(err)
	}
	cases = append(cases, key)

	for _, p := range cases {
		buf := SerializePartitioning(p)
		if len(buf) != p.SizeInBytes() {
			t.Fatalf("length discipline: got %d, want %d", len(buf), p.SizeInBytes())
		}
		got, rest, err := ParsePartitioning(buf)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if len(rest) != 0 {
			t.Fatalf("unexpected trailing bytes: %d", len(rest))
		}
		if got.Kind != p.Kind || string(got.Value) != string(p.Value) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
		}
	}
}

// S5: a full three-message SendMessages batch round-trips: the serialized
// length matches SizeInBytes and every message's payload and id survive.
func TestSendMessagesRoundTripSeedVector(t *testing.T) {
	m1, _ := contracts.MessageFromString("hello 1")
	id2 := contracts.NewMessageID(2)
	m2, _ := contracts.NewMessage(&id2, []byte("hello 2"), nil)
	id3 := contracts.NewMessageID(3)
	m3, _ := contracts.NewMessage(&id3, []byte("hello 3"), nil)

	cmd := contracts.SendMessages{
		StreamID:     contracts.NumericIdentifier(1),
		TopicID:      contracts.NumericIdentifier(2),
		Partitioning: contracts.PartitionID(4),
		Messages:     []contracts.Message{m1, m2, m3},
	}

	buf := SerializeSendMessages(cmd)
	if len(buf) != cmd.SizeInBytes() {
		t.Fatalf("length discipline: got %d, want %d", len(buf), cmd.SizeInBytes())
	}
	got, err := ParseSendMessages(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got.Messages))
	}
	for i, want := range cmd.Messages {
		if string(got.Messages[i].Payload) != string(want.Payload) {
			t.Fatalf("message %d payload mismatch: got %q, want %q", i, got.Messages[i].Payload, want.Payload)
		}
		if got.Messages[i].ID != want.ID {
			t.Fatalf("message %d id mismatch: got %x, want %x", i, got.Messages[i].ID, want.ID)
		}
	}
}

// S6: LogoutUser serializes to zero bytes; parse(empty) succeeds and
// parse(any trailing byte) fails with InvalidCommand.
func TestLogoutUserSeedVector(t *testing.T) {
	buf := SerializeLogoutUser(contracts.LogoutUser{})
	if len(buf) != 0 {
		t.Fatalf("expected zero bytes, got %d", len(buf))
	}
	if _, err := ParseLogoutUser(nil); err != nil {
		t.Fatalf("parse(empty) should succeed: %v", err)
	}
	if _, err := ParseLogoutUser([]byte{0x00}); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("parse([0x00]) should be InvalidCommand, got %v", err)
	}
}

func TestCreateStreamRoundTrip(t *testing.T) {
	cmd := contracts.CreateStream{Name: "events"}
	buf := SerializeCreateStream(cmd)
	got, err := ParseCreateStream(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Name != cmd.Name || got.StreamID != nil {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateTopicRoundTrip(t *testing.T) {
	expiry := uint32(3600)
	cmd := contracts.CreateTopic{
		StreamID:          contracts.NumericIdentifier(1),
		PartitionsCount:   4,
		Compression:       contracts.CompressionNone,
		Name:              "clicks",
		MessageExpiry:     &expiry,
		ReplicationFactor: 1,
	}
	buf := SerializeCreateTopic(cmd)
	got, err := ParseCreateTopic(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Name != cmd.Name || got.PartitionsCount != cmd.PartitionsCount || *got.MessageExpiry != expiry {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSendMessagesValidatorIdempotence(t *testing.T) {
	m, _ := contracts.MessageFromString("x")
	cmd := contracts.SendMessages{
		StreamID:     contracts.NumericIdentifier(1),
		TopicID:      contracts.NumericIdentifier(1),
		Partitioning: contracts.Balanced(),
		Messages:     []contracts.Message{m},
	}
	err1 := cmd.Validate()
	err2 := cmd.Validate()
	if err1 != err2 {
		t.Fatalf("validate should be idempotent: %v != %v", err1, err2)
	}
}
