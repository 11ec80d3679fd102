// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package transport hooks the error dispatcher into net/http clients.

RoundTripper wraps another http.RoundTripper and reports every response with
a status of 400 or above to a Reporter, usually a *dispatcher.Dispatcher.
The response is returned to the caller unchanged; its body can still be read
in full.

# Basic Usage

	client := &http.Client{
		Transport: transport.NewRoundTripper(http.DefaultTransport, d),
	}

	resp, err := client.Get("http://dummy.de/list?limit=10&offset=20")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := transport.CheckResponse(resp); err != nil {
		// err carries the status and the server's error code, see httperr
		return err
	}

The request URL without its query string is reported as the request URL, and
the query values become the request parameters. A JSON body of the form
{"code": 100, "message": "..."} is decoded into the error data.
*/
package transport
