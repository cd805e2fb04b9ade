//
// Account addresses are stellar public addresses; this package aliases the
// parts of stellar's keypair package the election uses.
//
package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

type Full = stellar.Full
type KP = stellar.KP

var Parse = stellar.Parse
