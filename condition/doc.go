// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package condition compiles and evaluates CEL conditions over failed HTTP
responses. Rules use them to narrow a custom message beyond the status and
error code match.

# Variables

	status     int     HTTP status of the response (0 when absent)
	code       int     application error code from the body (0 when absent)
	has_code   bool    whether the body carried an error code
	message    string  application error message from the body
	url        string  request URL
	method     string  request method

# Basic Usage

	engine := condition.NewEngine()

	cond, err := engine.Compile(`status == 409 && message.contains("quota")`)
	if err != nil {
		var compileErr *condition.CompileError
		if errors.As(err, &compileErr) {
			fmt.Println(compileErr.Kind, compileErr.Issues)
		}
	}

	ok, err := cond.Matches(condition.Failure{Status: 409, Message: "quota exceeded"})

# Limits

Expressions longer than DefaultMaxExpressionLength are rejected at compile
time and evaluation is bounded by DefaultCostLimit.

# Concurrency

The Engine and compiled Conditions are safe for concurrent use.
*/
package condition
