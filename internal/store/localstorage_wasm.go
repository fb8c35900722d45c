//go:build js && wasm

package store

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"stagseek/internal/round"
)

// LocalStorage keeps the record in the browser's window.localStorage.
type LocalStorage struct {
	Key string
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{Key: Key}
}

func (s *LocalStorage) storage() (js.Value, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return js.Value{}, fmt.Errorf("localStorage unavailable")
	}
	return ls, nil
}

func (s *LocalStorage) Load() (round.Result, bool, error) {
	var res round.Result
	ls, err := s.storage()
	if err != nil {
		return res, false, err
	}
	v := ls.Call("getItem", s.Key)
	if v.IsNull() || v.IsUndefined() {
		return res, false, nil
	}
	if err := json.Unmarshal([]byte(v.String()), &res); err != nil {
		return res, false, fmt.Errorf("decode %s: %w", s.Key, err)
	}
	return res, true, nil
}

func (s *LocalStorage) Save(res round.Result) (err error) {
	ls, err := s.storage()
	if err != nil {
		return err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	// setItem throws on quota errors; surface them as errors.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.setItem: %v", r)
		}
	}()
	ls.Call("setItem", s.Key, string(data))
	return nil
}
