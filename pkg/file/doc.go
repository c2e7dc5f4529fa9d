// Package file stores short-lived artifacts that the document service must
// download by URL, such as the template the reachability probe converts.
//
// The Storage interface has two implementations:
//   - LocalStorage: a directory served by the host under a public base URL
//   - S3Storage: AWS S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// All paths are storage-relative. LocalStorage confines every operation to
// its base directory; S3Storage rejects keys containing "..".
//
// # Usage
//
//	storage, err := file.NewLocalStorage("/var/lib/docs/tmp", "https://host.example.com/tmp")
//	if err != nil {
//	    return err
//	}
//
//	err = file.WithTemp(ctx, storage, "check_123.docx", bytes.NewReader(body), func(url string) error {
//	    // hand url to the document service
//	    return nil
//	})
//
// WithTemp removes the stored file on every return path.
//
// # Error Handling
//
// Errors wrap the package sentinels, so callers can use errors.Is:
//
//	if errors.Is(err, file.ErrFileNotFound) {
//	    // handle missing file
//	}
package file
