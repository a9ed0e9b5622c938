package square

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// amountToInt64Hook normalizes money amounts to int64 cents. Depending on the
// SDK surface Square emits amounts either as JSON numbers or as decimal
// strings (amounts above the JS safe-integer range are always strings).
func amountToInt64Hook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Int64 {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("amount %q is not an integer", v)
			}
			return n, nil
		case float64:
			return int64(v), nil
		}
		return data, nil
	}
}

// DecodeCatalogObject maps one raw catalog list entry onto the typed union.
func DecodeCatalogObject(raw map[string]interface{}) (CatalogObject, error) {
	var obj CatalogObject
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: amountToInt64Hook(),
		Result:     &obj,
	})
	if err != nil {
		return obj, err
	}
	if err := dec.Decode(raw); err != nil {
		return obj, fmt.Errorf("decode catalog object: %w", err)
	}
	return obj, nil
}

// DecodeCatalogObjects maps a page of raw entries, skipping none: a single
// malformed object fails the whole page so a bad feed never half-populates
// the cache.
func DecodeCatalogObjects(raw []map[string]interface{}) ([]CatalogObject, error) {
	out := make([]CatalogObject, 0, len(raw))
	for _, r := range raw {
		obj, err := DecodeCatalogObject(r)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}
