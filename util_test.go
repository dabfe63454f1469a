package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"testing"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func readBase64File(t *testing.T, path string) []byte {
	t.Helper()
	bdata := readFile(t, path)
	data := make([]byte, base64.StdEncoding.DecodedLen(len(bdata)))
	n, err := base64.StdEncoding.Decode(data, bdata)
	if err != nil {
		t.Fatalf("decoding base64 %s: %v", path, err)
	}
	data = data[:n]
	return data
}

// readBase64Lines decodes a file holding one base64 string per line.
func readBase64Lines(t *testing.T, path string) [][]byte {
	t.Helper()
	var out [][]byte
	for i, line := range bytes.Split(readFile(t, path), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		data := make([]byte, base64.StdEncoding.DecodedLen(len(line)))
		n, err := base64.StdEncoding.Decode(data, line)
		if err != nil {
			t.Fatalf("%s:%d: %v", path, i+1, err)
		}
		out = append(out, data[:n])
	}
	return out
}
