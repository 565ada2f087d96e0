package util

import (
	"math/rand"
	"unsafe"
)

// String2Bytes returns the bytes of str without copying. The result must
// not be modified.
func String2Bytes(str string) []byte {
	if str == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

func GetRandomBytes(needLen int) []byte {
	ret := make([]byte, needLen)
	for i := range ret {
		ret[i] = byte(rand.Intn(256))
	}
	return ret
}
