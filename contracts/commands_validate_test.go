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

func TestCreateStreamValidate(t *testing.T) {
	if err := (CreateStream{Name: "events"}).Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	if err := (CreateStream{Name: ""}).Validate(); !errors.Is(err, perr.InvalidStreamName) {
		t.Fatalf("empty name: %v", err)
	}
	if err := (CreateStream{Name: strings.Repeat("a", MaxNameLength+1)}).Validate(); !errors.Is(err, perr.InvalidStreamName) {
		t.Fatalf("over-long name: %v", err)
	}
	zero := uint32(0)
	if err := (CreateStream{Name: "x", StreamID: &zero}).Validate(); !errors.Is(err, perr.InvalidIdentifier) {
		t.Fatalf("explicit zero stream id: %v", err)
	}
}

func TestUpdateStreamValidate(t *testing.T) {
	cmd := UpdateStream{StreamID: NumericIdentifier(1), Name: "renamed"}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	cmd.Name = ""
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidStreamName) {
		t.Fatalf("empty name: %v", err)
	}
}

func TestCreateTopicValidate(t *testing.T) {
	base := CreateTopic{
		StreamID:          NumericIdentifier(1),
		PartitionsCount:   1,
		Name:              "clicks",
		ReplicationFactor: 1,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}

	noName := base
	noName.Name = ""
	if err := noName.Validate(); !errors.Is(err, perr.InvalidTopicName) {
		t.Fatalf("empty name: %v", err)
	}

	tooManyPartitions := base
	tooManyPartitions.PartitionsCount = MaxPartitionsCount + 1
	if err := tooManyPartitions.Validate(); !errors.Is(err, perr.InvalidPartitionsCount) {
		t.Fatalf("over-limit partitions: %v", err)
	}

	noReplication := base
	noReplication.ReplicationFactor = 0
	if err := noReplication.Validate(); !errors.Is(err, perr.InvalidReplicationFactor) {
		t.Fatalf("zero replication factor: %v", err)
	}
}

func TestDeleteTopicValidatesBothIdentifiers(t *testing.T) {
	cmd := DeleteTopic{StreamID: NumericIdentifier(1), TopicID: Identifier{Kind: IdentifierKind(9)}}
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("malformed topic id should fail: %v", err)
	}
}

func TestCreateConsumerGroupValidate(t *testing.T) {
	cmd := CreateConsumerGroup{
		StreamID: NumericIdentifier(1),
		TopicID:  NumericIdentifier(1),
		Name:     "workers",
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	cmd.Name = ""
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidConsumerGroupName) {
		t.Fatalf("empty name: %v", err)
	}
}

func TestValidateStreamTopicGroupChecksAllThree(t *testing.T) {
	cmd := DeleteConsumerGroup{
		StreamID: NumericIdentifier(1),
		TopicID:  NumericIdentifier(1),
		GroupID:  NumericIdentifier(1),
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	cmd.GroupID = Identifier{Kind: IdentifierKind(9)}
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("malformed group id should fail: %v", err)
	}
}

func TestLoginUserValidateBoundaries(t *testing.T) {
	valid := LoginUser{Username: strings.Repeat("u", MinUserNameLength), Password: strings.Repeat("p", MinPasswordLength)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("min-length credentials should validate: %v", err)
	}
	tooShort := LoginUser{Username: "ab", Password: "pass"}
	if err := tooShort.Validate(); !errors.Is(err, perr.InvalidUserName) {
		t.Fatalf("short username: %v", err)
	}
	tooLong := LoginUser{Username: strings.Repeat("u", MaxUserNameLength+1), Password: "pass"}
	if err := tooLong.Validate(); !errors.Is(err, perr.InvalidUserName) {
		t.Fatalf("long username: %v", err)
	}
	badPassword := LoginUser{Username: "alice", Password: "ab"}
	if err := badPassword.Validate(); !errors.Is(err, perr.InvalidPassword) {
		t.Fatalf("short password: %v", err)
	}
}

func TestLogoutUserValidateAlwaysNil(t *testing.T) {
	if err := (LogoutUser{}).Validate(); err != nil {
		t.Fatalf("LogoutUser always validates, got %v", err)
	}
}

func TestUpdateUserValidateOptionalUsername(t *testing.T) {
	cmd := UpdateUser{UserID: NumericIdentifier(1)}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("nil username should be allowed: %v", err)
	}
	short := "ab"
	cmd.Username = &short
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidUserName) {
		t.Fatalf("short username: %v", err)
	}
}

func TestChangePasswordValidate(t *testing.T) {
	cmd := ChangePassword{UserID: NumericIdentifier(1), CurrentPassword: "oldpass", NewPassword: "newpass"}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	cmd.NewPassword = "x"
	if err := cmd.Validate(); !errors.Is(err, perr.InvalidPassword) {
		t.Fatalf("short new password: %v", err)
	}
}

func TestPingGetStatsGetMeGetClientsAlwaysValidate(t *testing.T) {
	if err := (Ping{}).Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (GetStats{}).Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (GetMe{}).Validate(); err != nil {
		t.Fatal(err)
	}
	if err := (GetClients{}).Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestGetClientValidatesClientID(t *testing.T) {
	if err := (GetClient{ClientID: 0}).Validate(); !errors.Is(err, perr.InvalidIdentifier) {
		t.Fatalf("zero client id should be rejected: %v", err)
	}
	if err := (GetClient{ClientID: 7}).Validate(); err != nil {
		t.Fatalf("nonzero client id should validate: %v", err)
	}
}
