package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	"strconv"
)

// GenerateID создает простой уникальный ID сессии (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed превращает строку в сид. Числа берутся как есть,
// остальное хешируется: "-seed tower" даёт одну и ту же башню на любой машине.
func StringToSeed(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
