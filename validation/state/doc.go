// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package state provides validation functions for navigation state names.
//
// A state name is one or more dot-separated segments such as
// "app.users.detail". Segments hold ASCII letters, digits, underscores,
// dashes and dollar signs and must not start with a dash.
package state
