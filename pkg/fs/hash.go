package fs

import (
	"encoding/hex"
	"hash/crc32"
	"io"
	"os"
)

// Checksum returns the CRC32 (Castagnoli) checksum of a file as string.
func Checksum(fileName string) (string, error) {
	file, err := os.Open(fileName)

	if err != nil {
		return "", err
	}

	defer file.Close()

	hash := crc32.New(crc32.MakeTable(crc32.Castagnoli))

	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// IsChecksum tests if a string looks like a checksum returned by Checksum.
func IsChecksum(s string) bool {
	if len(s) != 8 {
		return false
	}

	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}

	return true
}
