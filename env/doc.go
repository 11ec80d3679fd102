// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

	reader := &env.OSReader{}
	value := reader.Getenv("UNSTRUCTURED_LOGS")
	unstructured := env.Bool(reader, "UNSTRUCTURED_LOGS", true)

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")
*/
package env
