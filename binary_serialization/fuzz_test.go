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
	"testing"

	"github.com/nimbusmq/nimbusmq/contracts"
)

// Fuzz targets for every parser that takes raw wire bytes directly from a
// peer. None of these should ever panic, regardless of input: a malformed
// frame must surface as an error, not a crash.

func FuzzParseIdentifier(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1})
	f.Add([]byte{2, 0, 0, 0, 0})
	f.Add([]byte{2, 3, 0, 0, 0, 'a', 'b', 'c'})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _, _ = ParseIdentifier(buf)
	})
}

func FuzzParseMessage(f *testing.F) {
	m, _ := contracts.MessageFromString("seed")
	f.Add(SerializeMessage(m))
	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _, _ = ParseMessage(buf)
	})
}

func FuzzParseHeaderSet(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = ParseHeaderSet(buf)
	})
}

func FuzzParsePartitioning(f *testing.F) {
	f.Add([]byte{1, 0})
	f.Add([]byte{3, 4, 0, 0, 0, 0})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _, _ = ParsePartitioning(buf)
	})
}

func FuzzParseSendMessages(f *testing.F) {
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = ParseSendMessages(buf)
	})
}

func FuzzParsePollMessages(f *testing.F) {
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = ParsePollMessages(buf)
	})
}

func FuzzParseCreateTopic(f *testing.F) {
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = ParseCreateTopic(buf)
	})
}

func FuzzParseCreateUser(f *testing.F) {
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = ParseCreateUser(buf)
	})
}

func FuzzDeserializePolledMessages(f *testing.F) {
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, buf []byte) {
		_, _ = DeserializePolledMessages(buf)
	})
}
