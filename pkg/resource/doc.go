// Package resource locates and opens trust material (CA certificates and similar
// small files) by path, independently of where the bytes actually live.
//
// Every backend implements Loader:
//
//   - FileLoader reads from the local filesystem, optionally confined to a base directory.
//   - FSLoader reads from any fs.FS, typically an embed.FS compiled into the binary.
//   - S3Loader reads objects addressed as s3://bucket/key from Amazon S3 or an
//     S3-compatible service.
//   - Mux routes a path to one of the above by prefix and falls back to a default loader.
//
// # Usage
//
//	mux := resource.NewMux(resource.NewFileLoader(""))
//	s3l, err := resource.NewS3Loader(ctx, resource.S3Config{Region: "eu-west-1"})
//	if err != nil {
//	    return err
//	}
//	mux.Handle(resource.S3Prefix, s3l)
//
//	if !mux.Exists(ctx, "s3://pki/search/ca.pem") {
//	    // not found
//	}
//	rc, err := mux.Open(ctx, "s3://pki/search/ca.pem")
//
// Loaders are safe for concurrent use.
package resource
