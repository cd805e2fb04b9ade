// Provides utilities to use in test code
package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

//
// Create a new keypair to be used by test code
//
func Random() *Full {
	kp, err := stellar.Random()
	if err != nil {
		panic(err)
	}

	return kp
}
