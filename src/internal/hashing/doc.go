// Package hashing computes MD5 checksums of data as it is written.
//
// The API uses it to derive entity tags for JSON responses, so unchanged
// collections can be answered with 304 Not Modified.
//
// # Example Usage
//
//	var buf bytes.Buffer
//	proxy := hashing.NewMD5WriterProxy(&buf)
//	_ = json.NewEncoder(proxy).Encode(payload)
//
//	etag := hashing.WeakETag(proxy)
//	fmt.Printf("%d bytes, ETag %s\n", buf.Len(), etag)
package hashing
