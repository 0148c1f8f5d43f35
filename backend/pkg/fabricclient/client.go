package fabricclient

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Ya-m-i/agri-fabric/backend/pkg/common"
)

// IdentityLabel is the wallet label under which each organization's admin
// identity is provisioned and looked up.
const IdentityLabel = "admin"

// Client holds one organization's session against the Fabric network: an
// open gateway plus the contract resolved on the fixed channel. Held for
// the process lifetime and never persisted.
type Client struct {
	gw           *gateway.Gateway
	network      *gateway.Network
	contract     *gateway.Contract
	queryTimeout time.Duration
}

// Connect establishes a session for one organization. Every step can fail
// independently; any failure means no handle at all, never a partial one.
func Connect(org common.Organization, cfg *common.Config) (*Client, error) {
	if _, err := os.Stat(org.ProfilePath); err != nil {
		return nil, errors.Wrapf(err, "connection profile for %s not found", org.Name)
	}

	wallet, err := gateway.NewFileSystemWallet(org.WalletPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wallet for %s", org.Name)
	}
	if !wallet.Exists(IdentityLabel) {
		return nil, errors.Errorf("identity %q not found in wallet for %s, run the enroll tool first", IdentityLabel, org.Name)
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromFile(filepath.Clean(org.ProfilePath))),
		gateway.WithIdentity(wallet, IdentityLabel),
		gateway.WithTimeout(cfg.CommitTimeout),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to gateway for %s", org.Name)
	}

	network, err := gw.GetNetwork(cfg.ChannelName)
	if err != nil {
		gw.Close()
		return nil, errors.Wrapf(err, "failed to get network %s for %s", cfg.ChannelName, org.Name)
	}

	return &Client{
		gw:           gw,
		network:      network,
		contract:     network.GetContract(cfg.ContractName),
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

// ConnectAll attempts a session for every configured organization. A
// failure leaves that organization marked unavailable and never aborts
// the others; with every organization down the façade still serves from
// its in-memory store.
func ConnectAll(cfg *common.Config) *Registry {
	registry := NewRegistry()

	var g errgroup.Group
	for _, org := range cfg.Orgs {
		org := org
		g.Go(func() error {
			client, err := Connect(org, cfg)
			if err != nil {
				log.Printf("Warning: Fabric connection failed for %s: %v", org.Name, err)
				registry.RegisterUnavailable(org.Name)
				return nil
			}
			log.Printf("Connected to Fabric for %s (channel=%s, contract=%s)", org.Name, cfg.ChannelName, cfg.ContractName)
			registry.Register(org.Name, client)
			return nil
		})
	}
	g.Wait()

	return registry
}

// SubmitTransaction submits a write to the ledger and waits for the
// commit acknowledgment, bounded by the gateway commit timeout.
func (c *Client) SubmitTransaction(name string, args ...string) ([]byte, error) {
	return c.contract.SubmitTransaction(name, args...)
}

// EvaluateTransaction runs a read against the ledger with a bounded wait.
// The in-flight call is not cancelled on expiry; the timeout surfaces as
// an error to the caller.
func (c *Client) EvaluateTransaction(name string, args ...string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	done := make(chan result, 1)
	go func() {
		data, err := c.contract.EvaluateTransaction(name, args...)
		done <- result{data, err}
	}()

	select {
	case r := <-done:
		return r.data, r.err
	case <-time.After(c.queryTimeout):
		return nil, errors.Errorf("query %s timed out after %s", name, c.queryTimeout)
	}
}

func (c *Client) Close() {
	c.gw.Close()
}
