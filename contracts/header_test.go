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

func TestHeaderKeyBoundaryLengths(t *testing.T) {
	if _, err := NewHeaderKey(""); err == nil {
		t.Fatal("empty key must be rejected")
	}
	if _, err := NewHeaderKey(string(make([]byte, MaxHeaderKeyLength))); err != nil {
		t.Fatalf("255-byte key should be accepted: %v", err)
	}
	if _, err := NewHeaderKey(string(make([]byte, MaxHeaderKeyLength+1))); err == nil {
		t.Fatal("256-byte key must be rejected")
	}
}

func TestFixedWidthHeaderValuesRoundTripSize(t *testing.T) {
	cases := []struct {
		name string
		v    HeaderValue
		size int
	}{
		{"bool", NewBoolHeaderValue(true), 1},
		{"int32", NewInt32HeaderValue(-7), 4},
		{"int64", NewInt64HeaderValue(-7), 8},
		{"uint32", NewUint32HeaderValue(7), 4},
		{"uint64", NewUint64HeaderValue(7), 8},
		{"float64", NewFloat64HeaderValue(3.5), 8},
	}
	for _, c := range cases {
		if len(c.v.Value) != c.size {
			t.Errorf("%s: got %d value bytes, want %d", c.name, len(c.v.Value), c.size)
		}
		if err := c.v.Validate(); err != nil {
			t.Errorf("%s: should validate: %v", c.name, err)
		}
	}
}

func TestHeaderValueValidateRejectsWrongFixedWidth(t *testing.T) {
	v := HeaderValue{Kind: HeaderUint32, Value: []byte{1, 2, 3}}
	if err := v.Validate(); err == nil {
		t.Fatal("expected error for mismatched fixed width")
	}
}

func TestStringHeaderValueBoundary(t *testing.T) {
	if _, err := NewStringHeaderValue(""); err == nil {
		t.Fatal("empty string value must be rejected")
	}
	if _, err := NewStringHeaderValue(string(make([]byte, MaxHeaderStringValueLength))); err != nil {
		t.Fatalf("255-byte string value should be accepted: %v", err)
	}
	if _, err := NewStringHeaderValue(string(make([]byte, MaxHeaderStringValueLength+1))); err == nil {
		t.Fatal("256-byte string value must be rejected")
	}
}
