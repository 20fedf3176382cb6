package project

import (
	"crypto/sha256"
	"strconv"
	"strings"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит ключ: H( content || part1 || part2 ... ).
// Порядок частей должен быть детерминированным.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Fingerprint hashes the lexer settings that change the token stream.
// Mnemonics are expected in sorted order.
func Fingerprint(mnemonics []string, behind, ahead int) Digest {
	var b strings.Builder
	b.WriteString("mnemonics:")
	b.WriteString(strings.Join(mnemonics, ","))
	b.WriteString(";window:")
	b.WriteString(strconv.Itoa(behind))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(ahead))
	return sha256.Sum256([]byte(b.String()))
}
