package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Tharak23/deep-fake/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = generateHash
	fatalfFn       = log.Fatalf
)

// resolvePassword returns the password to hash, preferring a CLI argument.
// Used to seed an initial admin account directly in the database.
func resolvePassword(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "ChangeMe-Research2026!"
}

func generateHash(password string) (string, error) {
	return crypto.HashPassword(password)
}

func main() {
	password := resolvePassword(os.Args[1:])

	printfFn("Generating hash for password: %s\n", password)
	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("failed to generate hash: %v", err)
	}
	printfFn("Bcrypt Hash: %s\n", hash)
}
