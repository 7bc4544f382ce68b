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

import "testing"

// S4: Message::from_str("hello 1") yields id=0, length=7,
// payload=b"hello 1", headers=None, and serializes with a 24-byte fixed
// header followed by the payload.
func TestMessageFromStringSeedVector(t *testing.T) {
	m, err := MessageFromString("hello 1")
	if err != nil {
		t.Fatalf("from_str: %v", err)
	}
	if !m.ID.IsZero() {
		t.Fatalf("expected zero id, got %x", m.ID)
	}
	if len(m.Payload) != 7 || string(m.Payload) != "hello 1" {
		t.Fatalf("payload: got %q", m.Payload)
	}
	if len(m.Headers) != 0 {
		t.Fatalf("expected no headers, got %d", len(m.Headers))
	}
	if m.SizeInBytes() != MessageHeaderSize+7 {
		t.Fatalf("size_in_bytes: got %d, want %d", m.SizeInBytes(), MessageHeaderSize+7)
	}
}

func TestMessageValidateRejectsEmptyPayload(t *testing.T) {
	if _, err := MessageFromString(""); err == nil {
		t.Fatal("expected EmptyMessagePayload for empty payload")
	}
}

func TestMessageValidateRejectsOverLimitPayload(t *testing.T) {
	_, err := NewMessage(nil, make([]byte, MaxPayloadSize+1), nil)
	if err == nil {
		t.Fatal("expected TooBigMessagePayload for over-limit payload")
	}
}

func TestMessageValidateAcceptsMaxPayload(t *testing.T) {
	_, err := NewMessage(nil, make([]byte, MaxPayloadSize), nil)
	if err != nil {
		t.Fatalf("max-size payload should validate: %v", err)
	}
}

func TestNewMessageNilAndZeroIDBothMeanServerAssigns(t *testing.T) {
	m1, err := NewMessage(nil, []byte("x"), nil)
	if err != nil {
		t.Fatalf("nil id: %v", err)
	}
	zero := MessageID{}
	m2, err := NewMessage(&zero, []byte("x"), nil)
	if err != nil {
		t.Fatalf("explicit zero id: %v", err)
	}
	if !m1.ID.IsZero() || !m2.ID.IsZero() {
		t.Fatal("both nil and explicit-zero ids must encode as the zero MessageID")
	}
}

func TestNewDefaultMessage(t *testing.T) {
	m := NewDefaultMessage()
	if string(m.Payload) != "hello world" {
		t.Fatalf("default message payload: got %q", m.Payload)
	}
}
