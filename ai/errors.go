// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrResponseFormat indicates the provider did not honor the
	// structured-output contract: the response was not valid JSON, lacked a
	// title field, or the title was not a usable string.
	ErrResponseFormat = errors.New("malformed provider response")

	// ErrProviderUnavailable indicates the provider endpoint could not be
	// reached or the requested model is not installed.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ProviderCallError reports a failed provider API call. Authentication
// failures, rate limiting, and timeouts all surface through it; the caller
// decides whether to retry, this package never does.
type ProviderCallError struct {
	// Provider is the name of the provider whose call failed.
	Provider string
	// Err is the underlying cause.
	Err error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("%s provider call failed: %v", e.Provider, e.Err)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}
