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
	"strings"
	"testing"

	perr "github.com/nimbusmq/nimbusmq/errors"
)

func TestNamedIdentifierBoundaryLengths(t *testing.T) {
	if _, err := NamedIdentifier(""); err == nil {
		t.Fatal("length 0 must be rejected")
	}
	if _, err := NamedIdentifier(strings.Repeat("a", 1)); err != nil {
		t.Fatalf("length 1 should be accepted: %v", err)
	}
	if _, err := NamedIdentifier(strings.Repeat("a", MaxIDValueLength)); err != nil {
		t.Fatalf("length 255 should be accepted: %v", err)
	}
	if _, err := NamedIdentifier(strings.Repeat("a", MaxIDValueLength+1)); err == nil {
		t.Fatal("length 256 must be rejected")
	}
}

func TestIdentifierValidateRejectsUnknownKindAsInvalidCommand(t *testing.T) {
	id := Identifier{Kind: IdentifierKind(99), Length: 0}
	err := id.Validate()
	if !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("unknown kind should be InvalidCommand, got %v", err)
	}
}

func TestIdentifierSizeInBytes(t *testing.T) {
	id := NumericIdentifier(7)
	if id.SizeInBytes() != 6 {
		t.Fatalf("numeric size_in_bytes: got %d, want 6", id.SizeInBytes())
	}
	named, _ := NamedIdentifier("stream-a")
	if named.SizeInBytes() != 2+len("stream-a") {
		t.Fatalf("named size_in_bytes: got %d", named.SizeInBytes())
	}
}

func TestIdentifierEqual(t *testing.T) {
	a := NumericIdentifier(1)
	b := NumericIdentifier(1)
	c := NumericIdentifier(2)
	if !a.Equal(b) {
		t.Fatal("identical numeric identifiers should be equal")
	}
	if a.Equal(c) {
		t.Fatal("distinct numeric identifiers should not be equal")
	}
}

func TestParseIdentifierDisambiguatesNumericVsNamed(t *testing.T) {
	id, err := ParseIdentifier("42")
	if err != nil || id.Kind != IdentifierKindNumeric {
		t.Fatalf("expected numeric identifier, got %v err=%v", id, err)
	}
	id, err = ParseIdentifier("my-stream")
	if err != nil || id.Kind != IdentifierKindNamed {
		t.Fatalf("expected named identifier, got %v err=%v", id, err)
	}
}
