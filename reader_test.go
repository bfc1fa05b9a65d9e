package chacha20

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReaderMatchesBlocks(t *testing.T) {
	key := []byte("an arbitrary 32 byte test key!!!")
	nonce := []byte("nonce here..")

	gen, err := New(key, nonce, 5)
	if err != nil {
		t.Fatal(err)
	}

	reader, err := NewReader(key, nonce, 5)
	if err != nil {
		t.Fatal(err)
	}

	expected := make([]byte, 0, 3*64)
	for i := 0; i < 3; i++ {
		block := gen.Next()
		for _, word := range block {
			expected = binary.LittleEndian.AppendUint32(expected, word)
		}
	}

	got := make([]byte, 3*64)
	reader.Read(got)

	if !bytes.Equal(got, expected) {
		t.Fatalf("reader bytes don't match serialized blocks\ngot      = %x\nexpected = %x", got, expected)
	}
}

func TestDifferingBufferSize(t *testing.T) {
	key := make([]byte, 32)
	for i := 0; i < 32; i++ {
		key[i] = byte(i + 1)
	}
	nonce := make([]byte, 12)

	canonicalStream := make([]byte, 1024)

	canonical, err := NewReader(key, nonce, 0)
	if err != nil {
		t.Fatal(err)
	}

	canonical.Read(canonicalStream)

	for bufferSize := 1; bufferSize <= 129; bufferSize++ {
		thisStream := make([]byte, 1024)
		reader, err := NewReader(key, nonce, 0)
		if err != nil {
			t.Fatal(err)
		}

		for offset := 0; offset < 1024; offset += bufferSize {
			end := offset + bufferSize
			if end > len(thisStream) {
				end = len(thisStream)
			}
			reader.Read(thisStream[offset:end])
		}

		if !bytes.Equal(thisStream, canonicalStream) {
			t.Fatalf("reading in chunks of %d didn't have the correct results", bufferSize)
		}
	}
}

func TestZeroBuffer(t *testing.T) {
	key := make([]byte, 32)
	for i := 0; i < 32; i++ {
		key[i] = byte(i + 1)
	}
	nonce := make([]byte, 12)

	streamWithZeroRead, err := NewReader(key, nonce, 0)
	if err != nil {
		t.Fatal(err)
	}

	bufferWithZeroRead := make([]byte, 32)

	streamWithZeroRead.Read(bufferWithZeroRead[0:16])
	n, err := streamWithZeroRead.Read(make([]byte, 0))
	if err != nil {
		t.Fatal("reading into a zero-length buffer should succeed")
	}
	if n != 0 {
		t.Fatal("reading into a zero-length buffer should return 0 bytes read")
	}
	streamWithZeroRead.Read(bufferWithZeroRead[16:32])

	streamWithoutZeroRead, err := NewReader(key, nonce, 0)
	if err != nil {
		t.Fatal(err)
	}

	bufferWithoutZeroRead := make([]byte, 32)
	streamWithoutZeroRead.Read(bufferWithoutZeroRead)

	if !bytes.Equal(bufferWithZeroRead, bufferWithoutZeroRead) {
		t.Fatal("reading into a zero-length buffer shouldn't affect the state of the stream")
	}
}
