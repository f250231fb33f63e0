// Package random 验证码用的安全随机数
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const digits = "0123456789"

// GetCode 生成 length 位数字验证码，首位不为 0
func GetCode(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}
	buf := make([]byte, length)
	for i := range buf {
		lo := 0
		if i == 0 {
			lo = 1
		}
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits)-lo)))
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		buf[i] = digits[lo+int(n.Int64())]
	}
	return string(buf), nil
}
