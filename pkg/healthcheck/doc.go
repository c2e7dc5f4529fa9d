// Package healthcheck validates that the configured document server is
// reachable and usable.
//
// A Checker runs these steps in order and stops at the first failure:
//
//  1. a document server URL is configured
//  2. a plain HTTP server is not used from an HTTPS host (mixed content)
//  3. the healthcheck endpoint answers "true"
//  4. the server version is newer than MinSupportedVersion
//  5. optionally, an empty DOCX stored through file.Storage is converted
//     and the result downloaded
//
// Failures are reported as fixed table messages from package errcode:
//
//	checker, _ := healthcheck.New(client, healthcheck.WithStorage(store))
//	res := checker.Check(ctx, healthcheck.IsSecureRequest(r))
//	if !res.OK() {
//		// show res.Error
//	}
package healthcheck
