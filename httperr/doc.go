// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types for failed HTTP responses.

A CodedError carries the HTTP status of the response that failed and, when
the server sent one, the application error code from the response body.
Both survive wrapping with fmt.Errorf and can be read back anywhere up the
call stack.

# Basic Usage

	err := httperr.New("resource not found", http.StatusNotFound)
	err = httperr.WithAPICode(err, http.StatusBadRequest, 100)

	status := httperr.Code(err)          // 400
	code, ok := httperr.APICode(err)     // 100, true

# Failed Responses

The transport package reports failed responses through Failed, which builds
an error message from the method, URL and status:

	err := httperr.Failed("GET", "https://api.example.com/items", 404, nil, "")
	// GET https://api.example.com/items: 404 Not Found
*/
package httperr
