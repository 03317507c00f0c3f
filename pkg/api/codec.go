package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec - формат кадров снимка для наблюдателя.
type Codec uint8

const (
	// CodecJSON - текстовые кадры, по умолчанию.
	CodecJSON Codec = iota
	// CodecMsgpack - бинарные кадры; ключи те же, что в JSON.
	CodecMsgpack
)

// ParseCodec разбирает ?codec=...; неизвестное значение - JSON.
func ParseCodec(s string) Codec {
	if strings.EqualFold(s, "msgpack") {
		return CodecMsgpack
	}
	return CodecJSON
}

func (c Codec) String() string {
	if c == CodecMsgpack {
		return "msgpack"
	}
	return "json"
}

// IsBinary - кадр отправляется как BinaryMessage.
func (c Codec) IsBinary() bool {
	return c == CodecMsgpack
}

// EncodeSnapshot сериализует снимок в выбранный формат.
func EncodeSnapshot(s *Snapshot, c Codec) ([]byte, error) {
	if c != CodecMsgpack {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot json: %w", err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot msgpack: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeSnapshot - обратная операция, нужна клиентам и тестам.
func DecodeSnapshot(data []byte, c Codec) (*Snapshot, error) {
	var s Snapshot
	if c != CodecMsgpack {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode snapshot json: %w", err)
		}
		return &s, nil
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot msgpack: %w", err)
	}
	return &s, nil
}
