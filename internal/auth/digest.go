package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestHex 计算输入的 SHA-256 摘要，返回 64 位小写 hex。
// 整个认证协议里所有哈希都用这一个函数。
func DigestHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SessionProof 计算挑战应答值：sha256(sessionId ∥ passwordHash)。
// 客户端和服务端用同一公式，两边各自独立计算后比对。
func SessionProof(sessionID, passwordHash string) string {
	return DigestHex(sessionID + passwordHash)
}

// digestEqual 恒定时间比较两个 hex 摘要，避免按位提前退出造成的时序侧信道。
func digestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
