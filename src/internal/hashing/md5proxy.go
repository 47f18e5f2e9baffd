package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

type ChecksumProvider interface {
	GetChecksum() string
}

// ChecksumWriterProxy passes writes through to an io.Writer while hashing them.
type ChecksumWriterProxy struct {
	writer   io.Writer
	checksum hash.Hash
}

// NewMD5WriterProxy creates a new instance of ChecksumWriterProxy.
func NewMD5WriterProxy(writer io.Writer) *ChecksumWriterProxy {
	return &ChecksumWriterProxy{
		writer:   writer,
		checksum: md5.New(),
	}
}

// Write writes buf to the underlying writer and hashes the bytes it accepted.
func (p *ChecksumWriterProxy) Write(buf []byte) (int, error) {
	n, err := p.writer.Write(buf)
	if n > 0 {
		// hash.Hash.Write never returns an error
		_, _ = p.checksum.Write(buf[:n])
	}
	return n, err
}

// GetChecksum returns the MD5 of everything written so far as a hex string.
func (p *ChecksumWriterProxy) GetChecksum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// WeakETag formats a checksum as a weak HTTP entity tag.
func WeakETag(p ChecksumProvider) string {
	return `W/"` + p.GetChecksum() + `"`
}
