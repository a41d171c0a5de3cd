package main

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errInvalidAnswersFile = errors.New("answers file is not valid json")

// answersFromJSON lee el objeto "answers" o, si no existe, la raiz del documento.
// Numeros y strings pasan tal cual; el validador decide si son enteros.
func answersFromJSON(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidAnswersFile
	}
	obj := gjson.GetBytes(data, "answers")
	if !obj.Exists() {
		obj = gjson.ParseBytes(data)
	}
	if !obj.IsObject() {
		return nil, errors.New("answers must be a json object")
	}

	form := map[string]string{}
	obj.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			form[key.String()] = value.Str
		default:
			form[key.String()] = value.Raw
		}
		return true
	})
	return form, nil
}
