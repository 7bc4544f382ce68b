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
	"bytes"
	"testing"
)

// S1: Partitioning.balanced() == [0x01, 0x00].
func TestPartitioningBalancedSeedVector(t *testing.T) {
	p := Balanced()
	if p.Kind != PartitioningBalanced || p.Length != 0 {
		t.Fatalf("balanced: got kind=%v length=%d", p.Kind, p.Length)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("balanced should validate: %v", err)
	}
}

// S2: PartitionID(4) == [0x02, 0x04, 0x04, 0x00, 0x00, 0x00].
func TestPartitionIDSeedVector(t *testing.T) {
	p := PartitionID(4)
	if p.Kind != PartitioningPartitionID || p.Length != 4 {
		t.Fatalf("partition_id: got kind=%v length=%d", p.Kind, p.Length)
	}
	if !bytes.Equal(p.Value, []byte{4, 0, 0, 0}) {
		t.Fatalf("partition_id value: got %x", p.Value)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("partition_id(4) should validate: %v", err)
	}
}

// S3: MessagesKeyStr("hello world") has kind=MessagesKey, length=11,
// value=b"hello world".
func TestMessagesKeyStrSeedVector(t *testing.T) {
	p, err := MessagesKeyStr("hello world")
	if err != nil {
		t.Fatalf("messages_key_str: %v", err)
	}
	if p.Kind != PartitioningMessagesKey || p.Length != 11 {
		t.Fatalf("messages_key_str: got kind=%v length=%d", p.Kind, p.Length)
	}
	if string(p.Value) != "hello world" {
		t.Fatalf("messages_key_str value: got %q", p.Value)
	}
}

func TestPartitioningValidateRejectsBalancedWithValue(t *testing.T) {
	p := Partitioning{Kind: PartitioningBalanced, Length: 1, Value: []byte{1}}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for balanced with non-empty value")
	}
}

func TestPartitioningValidateRejectsEmptyKey(t *testing.T) {
	p := Partitioning{Kind: PartitioningMessagesKey, Length: 0, Value: nil}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for empty messages_key")
	}
}

func TestMessagesKeyRejectsOverLongValue(t *testing.T) {
	if _, err := MessagesKey(make([]byte, 256)); err == nil {
		t.Fatal("expected error for 256-byte key")
	}
}

func TestPartitioningSizeInBytes(t *testing.T) {
	p := PartitionID(4)
	if p.SizeInBytes() != 6 {
		t.Fatalf("size_in_bytes: got %d, want 6", p.SizeInBytes())
	}
}

func TestPartitioningCloneIsIndependent(t *testing.T) {
	p, _ := MessagesKeyStr("hello")
	clone := p.Clone()
	clone.Value[0] = 'X'
	if p.Value[0] == 'X' {
		t.Fatal("clone shares backing array with original")
	}
}
