// Tencent is pleased to support the open source community by making tRPC available.
// Copyright (C) 2023 THL A29 Limited, a Tencent company. All rights reserved.
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the Apache 2.0 License that can be found in the LICENSE file.

package chunkstack

import (
	"trpc.group/trpc-go/chunkstack/log"
)

// Must returns v when err is nil and otherwise terminates the process through
// log.Fatalf, for callers that want the container's original fail-fast
// behavior instead of handling errors:
//
//	v := chunkstack.Must(st.Pop())
func Must[T any](v T, err error) T {
	if err != nil {
		log.Fatalf("chunkstack: %v", err)
	}
	return v
}

// MustOK is Must for operations that return only an error.
func MustOK(err error) {
	if err != nil {
		log.Fatalf("chunkstack: %v", err)
	}
}
