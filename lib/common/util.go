package common

import (
	"encoding/json"
	"os"
)

// GetENVValue returns the environment variable `key`, or `defaultValue` when
// it is not set.
func GetENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}

	return
}

// InStringArray returns the first index of `s` in `a`, -1 when missing.
func InStringArray(a []string, s string) (index int, found bool) {
	var h string
	for index, h = range a {
		found = h == s
		if found {
			return
		}
	}

	index = -1
	return
}

// MustUnmarshalJSON panics on a decoding error; use it only on data this node
// serialized itself.
func MustUnmarshalJSON(data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		panic(err)
	}
}

func MustMarshalJSON(o interface{}) []byte {
	b, _ := json.Marshal(o)
	return b
}
