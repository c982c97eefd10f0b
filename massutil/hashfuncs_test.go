package massutil

import (
	gosha256 "crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ripemd160"
)

func ExampleSha256() {
	data := []byte("test hash256")
	h, _ := Sha256(data)
	fmt.Println(hex.EncodeToString(h))

	// Output:
	// de8503647d0760bbabc8bf47526176bd1046afa9f5f20d8831d0ff455cee0523
}

func ExampleHash256() {
	data := []byte("test hash256")
	h, _ := Hash256(data)
	fmt.Println(hex.EncodeToString(h))

	// Output:
	// cb43cc5fc9e305ddf8fccc2112629da4d21fc840937b785e86d4a220406359a8
}

func ExampleRipemd160() {
	data := []byte("test hash256")
	fmt.Println(hex.EncodeToString(Ripemd160(data)))

	// Output:
	// 07fc1824f3c8b5c0aebfe9edd7b519a85def76eb
}

func ExampleHash160() {
	data := []byte("test hash160")
	h, _ := Hash160(data)
	fmt.Println(hex.EncodeToString(h))

	// Output:
	// b720061a734285a70e86cb32b31f32884e198c32
}

func TestHash256_Chainhash(t *testing.T) {
	for n := 0; n < 200; n += 7 {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i ^ n)
		}

		got, err := Hash256(data)
		require.NoError(t, err)
		assert.Equal(t, chainhash.DoubleHashB(data), got, "len %d", n)

		single, err := Sha256(data)
		require.NoError(t, err)
		assert.Equal(t, chainhash.HashB(data), single, "len %d", n)
	}
}

func TestHash160(t *testing.T) {
	data := []byte("TestHash160")
	got, err := Hash160(data)
	require.NoError(t, err)

	s := gosha256.Sum256(data)
	r := ripemd160.New()
	r.Write(s[:])
	assert.Equal(t, r.Sum(nil), got)
}

func BenchmarkSha256(b *testing.B) {
	data := []byte("bench sha256")

	for i := 0; i < b.N; i++ {
		Sha256(data)
	}
}

func BenchmarkHash256(b *testing.B) {
	data := []byte("bench hash256")

	for i := 0; i < b.N; i++ {
		Hash256(data)
	}
}

func BenchmarkHash160(b *testing.B) {
	data := []byte("bench hash160")

	for i := 0; i < b.N; i++ {
		Hash160(data)
	}
}
