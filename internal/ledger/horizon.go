package ledger

import (
	"net/http"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/network"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
	"github.com/stellar/go/txnbuild"
)

// HorizonClient is the part of the horizon API the gateway needs. *horizonclient.Client satisfies it.
type HorizonClient interface {
	AccountDetail(request horizonclient.AccountRequest) (horizon.Account, error)
	SubmitTransaction(transaction *txnbuild.Transaction) (horizon.Transaction, error)
	TransactionDetail(txHash string) (horizon.Transaction, error)
	Payments(request horizonclient.OperationRequest) (operations.OperationsPage, error)
	ClaimableBalances(cbr horizonclient.ClaimableBalanceRequest) (horizon.ClaimableBalances, error)
}

// NewHorizonClient builds a client whose requests are bounded by httpClient's timeout.
func NewHorizonClient(url string, httpClient *http.Client) *horizonclient.Client {
	return &horizonclient.Client{
		HorizonURL: url,
		HTTP:       httpClient,
	}
}

func passphraseFor(networkName string) string {
	if networkName == "public" {
		return network.PublicNetworkPassphrase
	}
	return network.TestNetworkPassphrase
}

func explorerFor(networkName string) string {
	if networkName == "public" {
		return "https://stellar.expert/explorer/public/tx/"
	}
	return "https://stellar.expert/explorer/testnet/tx/"
}
