// Package document holds the host-side document helpers the SDK relies on:
// path parsing (ParsePath), document-service cache keys
// (GenerateRevisionID), the empty DOCX used by the reachability probe
// (EmptyDocx), the format Catalog lookup and the Resolver used to stream
// files to the document service.
package document
