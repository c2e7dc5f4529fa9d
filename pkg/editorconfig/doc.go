// Package editorconfig builds the configuration object that opens a document
// in the editor.
//
// A Builder combines host data supplied by a Source with the format catalog
// and the editor defaults, chooses the editor type from the user agent and
// signs the result with the configured JWT secret:
//
//	b, err := editorconfig.New(snapshot, catalog, source)
//	cfg, err := b.Build(ctx, editorconfig.Request{
//		FileID:    id,
//		UserAgent: r.UserAgent(),
//		User:      &editorconfig.User{ID: "42", Name: "Jane"},
//	})
//
// Sources may also implement GoBackSource and PermissionsSource.
package editorconfig
