package hashing

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct {
	accept int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if len(p) > f.accept {
		return f.accept, errors.New("short write")
	}
	return len(p), nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestChecksumWriterProxy(t *testing.T) {
	var buf bytes.Buffer
	proxy := NewMD5WriterProxy(&buf)

	_, err := proxy.Write([]byte("hello "))
	assert.NoError(t, err)
	_, err = proxy.Write([]byte("world"))
	assert.NoError(t, err)

	assert.Equal(t, "hello world", buf.String())
	assert.Equal(t, md5Hex("hello world"), proxy.GetChecksum())
}

func TestChecksumWriterProxy_Empty(t *testing.T) {
	proxy := NewMD5WriterProxy(&bytes.Buffer{})
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", proxy.GetChecksum())
}

func TestChecksumWriterProxy_ShortWrite(t *testing.T) {
	proxy := NewMD5WriterProxy(&failingWriter{accept: 3})

	n, err := proxy.Write([]byte("hello"))
	assert.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, md5Hex("hel"), proxy.GetChecksum())
}

func TestWeakETag(t *testing.T) {
	var buf bytes.Buffer
	proxy := NewMD5WriterProxy(&buf)
	_, _ = proxy.Write([]byte("[]\n"))

	assert.Equal(t, `W/"`+md5Hex("[]\n")+`"`, WeakETag(proxy))
}
