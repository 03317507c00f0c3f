package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tlb-server/pkg/api"
)

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// OptionalHandlerFunc получает nil, если клиент не прислал данных
type OptionalHandlerFunc[T any] func(ctx Context, payload *T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (INIT, END_TURN)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		payload, err := decode[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, payload)
	}
}

// WithOptionalPayload - как WithPayload, но пустой payload (или null) допустим.
func WithOptionalPayload[T any](handler OptionalHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return handler(ctx, nil)
		}
		payload, err := decode[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, &payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		// Мы просто игнорируем входящий JSON, так как он не нужен логике.
		return handler(ctx)
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var payload T

	// 1. Распаковка JSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("invalid payload format: %w", err)
	}

	// 2. Автоматическая валидация
	// Проверяем, реализует ли структура T интерфейс Validator
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("validation failed: %w", err)
		}
	}
	return payload, nil
}
