// Package docservice is the outbound side of the SDK: a client for the
// document server's healthcheck, conversion and command services.
//
// Every call goes through Client.Send, which applies a 60 second default
// timeout, verifies TLS certificates unless the ignore-SSL setting is on and
// treats any status other than 200 as a transport failure. SignedRequest
// adds the JWT envelope when a secret is configured: a token over
// {"payload": body} in the configured header (with its prefix) and a token
// over the body itself in the body's "token" field.
//
// Service replies are mapped onto the errcode taxonomy:
//
//	uri, err := client.ConvertedURI(ctx, docservice.ConvertRequest{
//	    DocumentURI: "https://host/files/report.doc",
//	    ToExt:       "docx",
//	})
//	switch {
//	case errors.Is(err, errcode.ErrDocService):
//	    // conversion service error code, errcode.Message(err) has the text
//	case errors.Is(err, errcode.ErrTransport):
//	    // network failure, timeout or non-200 reply
//	}
//
// No call is retried. A CircuitBreaker can be attached with
// WithCircuitBreaker to fail fast while a server keeps failing.
package docservice
