package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/Tharak23/deep-fake/pkg/crypto"
)

func TestResolvePassword(t *testing.T) {
	if got := resolvePassword([]string{"abc"}); got != "abc" {
		t.Fatalf("unexpected arg password: %s", got)
	}
	if got := resolvePassword(nil); got == "" {
		t.Fatal("expected a default password")
	}
}

func TestGenerateHash(t *testing.T) {
	hash, err := generateHash("my-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !crypto.CheckPassword("my-pass", hash) {
		t.Fatal("hash does not verify against the password")
	}
}

func TestMain_PrintsHash(t *testing.T) {
	origPrintf := printfFn
	origGenerate := generateHashFn
	defer func() {
		printfFn = origPrintf
		generateHashFn = origGenerate
	}()

	var out strings.Builder
	printfFn = func(format string, args ...interface{}) (int, error) {
		out.WriteString(format)
		return 0, nil
	}
	generateHashFn = func(password string) (string, error) {
		return "$2a$10$fakehash", nil
	}

	main()

	if !strings.Contains(out.String(), "Bcrypt Hash") {
		t.Fatalf("hash output missing: %s", out.String())
	}
}

func TestMain_HashFailure(t *testing.T) {
	origGenerate := generateHashFn
	origFatalf := fatalfFn
	defer func() {
		generateHashFn = origGenerate
		fatalfFn = origFatalf
	}()

	generateHashFn = func(password string) (string, error) {
		return "", errors.New("boom")
	}
	called := false
	fatalfFn = func(format string, args ...interface{}) {
		called = true
	}

	main()

	if !called {
		t.Fatal("expected fatalf on hash failure")
	}
}
