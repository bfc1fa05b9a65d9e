// Demonstration driver: builds a keystream generator from a demo key and
// nonce and prints successive blocks. Nothing here is part of the cipher
// contract.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Kosta-Git/chacha20"
)

func main() {
	blocks := flag.Int("blocks", 10, "number of keystream blocks to print")
	interactive := flag.Bool("interactive", false, "prompt for a key passphrase instead of using the demo key")
	flag.Parse()

	keyInput := "01234567890123456789012345678901"
	if *interactive {
		var err error
		keyInput, err = readPassphrase("Key passphrase: ")
		if err != nil {
			log.Fatal(err)
		}
	}

	// DeriveKey/DeriveNonce zero-pad or truncate; fine for a demo, never
	// for real key setup
	key := chacha20.DeriveKey(keyInput)
	nonce := chacha20.DeriveNonce("12 length k]")

	gen, err := chacha20.New(key[:], nonce[:], 0)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *blocks; i++ {
		block := gen.Next()
		for j, word := range block {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%08x", word)
		}
		fmt.Println()
	}
}
