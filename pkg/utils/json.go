package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in; com pretty=false sai em uma linha só
func PrettyJson(in any, pretty bool) (string, error) {
	var (
		buffer []byte
		err    error
	)

	if pretty {
		buffer, err = json.MarshalIndent(in, "", "  ")
	} else {
		buffer, err = json.Marshal(in)
	}
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
