package utils

import (
	"strings"
	"testing"
)

func TestSha512String(t *testing.T) {
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	if got := Sha512String(""); got != want {
		t.Errorf("Sha512String(\"\") = %v, want %v", got, want)
	}
}

func TestRandSalt(t *testing.T) {
	salt := RandSalt(60)
	if len(salt) != 60 {
		t.Errorf("RandSalt(60) length = %d", len(salt))
	}
	for _, c := range salt {
		if !strings.ContainsRune(saltChars, c) {
			t.Errorf("unexpected salt character %q", c)
		}
	}
	if salt == RandSalt(60) {
		t.Error("two salts should not be equal")
	}
}
