package storage

import "os"

func CleanDB(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	os.RemoveAll(path)
}

//
// Provides a replacement for a file backed LevelDBBackend suitable for unit
// tests; LevelDB allows one to create a memory DB.
//
func NewTestStorage() *LevelDBBackend {
	config, _ := NewConfigFromString("memory://")
	st, err := NewLevelDBBackend(config)
	if err != nil {
		panic(err)
	}

	return st
}
