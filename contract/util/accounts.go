package util

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meverselabs/stakefarm/common"
)

// Account returns the deterministic address of the name
func Account(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("account:" + name)))
}

// Accounts returns the admin and the named users
func Accounts(names ...string) (common.Address, []common.Address) {
	users := make([]common.Address, 0, len(names))
	for _, name := range names {
		users = append(users, Account(name))
	}
	return Account("admin"), users
}
