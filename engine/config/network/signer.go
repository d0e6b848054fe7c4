package network

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	chainsel "github.com/smartcontractkit/chain-selectors"
)

// signerPrefix is prepended to the raw signer key to form an account entry.
const signerPrefix = "0x"

// formatSigner prefixes the signer key with 0x. A key that already carries the prefix is
// returned unchanged. The key is otherwise not interpreted.
func formatSigner(key string) string {
	if strings.HasPrefix(key, "0x") || strings.HasPrefix(key, "0X") {
		return key
	}

	return signerPrefix + key
}

// signerAddress derives the account address of a formatted signer key. An error is returned if
// the key is not a valid secp256k1 private key.
func signerAddress(signer string) (common.Address, error) {
	privKey, err := crypto.HexToECDSA(signer[len(signerPrefix):])
	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(privKey.PublicKey), nil
}

// chainSelector looks up the chain selector of an EVM chain id. It returns false if the chain is
// not known to the chain selectors registry.
func chainSelector(chainID uint64) (uint64, bool) {
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(
		strconv.FormatUint(chainID, 10), chainsel.FamilyEVM,
	)
	if err != nil {
		return 0, false
	}

	return details.ChainSelector, true
}
