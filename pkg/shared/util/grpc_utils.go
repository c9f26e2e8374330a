/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package util

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrKind represents if a failed call to a remote orca service is worth retrying.
type ErrKind int16

const (
	Retryable    ErrKind = iota // The error is retryable
	NonRetryable                // The error is non-retryable
)

func (ek ErrKind) String() string {
	switch ek {
	case Retryable:
		return "Retryable"
	case NonRetryable:
		return "NonRetryable"
	default:
		return "Unknown"
	}
}

// RemoteError is returned by the clients talking to orca core or to a processor.
type RemoteError struct {
	Kind    ErrKind
	Call    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Call, e.Message)
}

// ToRemoteErr converts gRPC error to a RemoteError
func ToRemoteErr(name string, err error) error {
	if err == nil {
		return nil
	}
	statusCode, ok := status.FromError(err)
	remoteErr := &RemoteError{Kind: NonRetryable, Call: name, Message: statusCode.Message()}
	// not a standard status, the code is unknown which we consider as non retryable
	if !ok {
		return remoteErr
	}
	switch statusCode.Code() {
	case codes.OK:
		return nil
	case codes.DeadlineExceeded, codes.Unavailable, codes.Unknown:
		remoteErr.Kind = Retryable
		return remoteErr
	default:
		return remoteErr
	}
}
