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

package perr

import (
	"errors"
	"testing"
)

func TestProtocolErrorIsMatchesByCode(t *testing.T) {
	fresh := &ProtocolError{Code: InvalidCommand.Code, Message: "a different message"}
	if !errors.Is(fresh, InvalidCommand) {
		t.Fatal("a freshly built ProtocolError with the same code should match the sentinel")
	}
}

func TestProtocolErrorIsDistinguishesCodes(t *testing.T) {
	if errors.Is(InvalidCommand, InvalidIdentifier) {
		t.Fatal("distinct codes must not match")
	}
}

func TestFromStatusCodeZeroIsNil(t *testing.T) {
	if err := FromStatusCode(0); err != nil {
		t.Fatalf("status 0 should be nil, got %v", err)
	}
}

func TestFromStatusCodeKnownValue(t *testing.T) {
	err := FromStatusCode(InvalidStreamName.Code)
	if !errors.Is(err, InvalidStreamName) {
		t.Fatalf("expected InvalidStreamName, got %v", err)
	}
}

func TestFromStatusCodeUnknownValueIsStillAProtocolError(t *testing.T) {
	err := FromStatusCode(999999)
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("unknown status should still be a *ProtocolError, got %T", err)
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := &TransportError{Op: "read_header", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatal("TransportError should unwrap to its inner error")
	}
}
