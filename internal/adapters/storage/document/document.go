// Package document define el formato en disco común a todos los backends:
// un objeto JSON con una única clave (el nombre de la colección) y el array de registros,
// con indentación de 2 espacios para poder inspeccionarlo a mano.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

var ErrBadTarget = errors.New("document: dst must be a non-nil pointer to a slice")

// Encode serializa records como {"<collection>": [...]}.
// Un slice nil se escribe como [] para que el archivo nunca contenga null.
func Encode(collection string, records any) ([]byte, error) {
	if records == nil {
		records = []any{}
	}
	if v := reflect.ValueOf(records); v.Kind() == reflect.Slice && v.IsNil() {
		records = []any{}
	}

	b, err := json.MarshalIndent(map[string]any{collection: records}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("document: encode %s: %w", collection, err)
	}
	return append(b, '\n'), nil
}

// Decode llena dst con los registros de la colección.
// Un documento vacío o sin la clave deja dst vacío.
// Ante JSON inválido devuelve error y deja dst vacío.
func Decode(collection string, data []byte, dst any) error {
	if err := Reset(dst); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("document: decode %s: %w", collection, err)
	}

	body, ok := raw[collection]
	if !ok || string(body) == "null" {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		_ = Reset(dst)
		return fmt.Errorf("document: decode %s records: %w", collection, err)
	}
	return nil
}

// Reset deja *dst como slice vacío (no nil).
func Reset(dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Slice {
		return ErrBadTarget
	}
	v.Elem().Set(reflect.MakeSlice(v.Elem().Type(), 0, 0))
	return nil
}
