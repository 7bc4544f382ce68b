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

func TestCreatePersonalAccessTokenValidate(t *testing.T) {
	if err := (CreatePersonalAccessToken{Name: "ci"}).Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	if err := (CreatePersonalAccessToken{Name: ""}).Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("empty name: %v", err)
	}
	if err := (CreatePersonalAccessToken{Name: strings.Repeat("a", MaxTokenNameLength+1)}).Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("over-long name: %v", err)
	}
}

func TestLoginWithPersonalAccessTokenValidate(t *testing.T) {
	if err := (LoginWithPersonalAccessToken{Token: "abc"}).Validate(); err != nil {
		t.Fatalf("should validate: %v", err)
	}
	if err := (LoginWithPersonalAccessToken{}).Validate(); !errors.Is(err, perr.InvalidCommand) {
		t.Fatalf("empty token: %v", err)
	}
}

func TestGetPersonalAccessTokensAlwaysValidates(t *testing.T) {
	if err := (GetPersonalAccessTokens{}).Validate(); err != nil {
		t.Fatal(err)
	}
}
