package fabricclient

import (
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/pkg/errors"

	"github.com/Ya-m-i/agri-fabric/backend/pkg/common"
)

// ProvisionAdmin reads the organization's admin certificate and private
// key from the crypto material tree and writes a fresh X.509 identity
// into the organization's wallet. The wallet directory is removed first,
// so any previously provisioned credentials for the organization are
// gone afterwards.
func ProvisionAdmin(org common.Organization, networkRoot string) error {
	mspDir := filepath.Join(networkRoot, "peerOrganizations", org.Name, "users", "Admin@"+org.Name, "msp")

	certPath, err := soleFile(filepath.Join(mspDir, "signcerts"))
	if err != nil {
		return errors.Wrapf(err, "failed to locate certificate for %s", org.Name)
	}
	keyPath, err := soleFile(filepath.Join(mspDir, "keystore"))
	if err != nil {
		return errors.Wrapf(err, "failed to locate private key for %s", org.Name)
	}

	cert, err := os.ReadFile(filepath.Clean(certPath))
	if err != nil {
		return errors.Wrapf(err, "failed to read certificate for %s", org.Name)
	}
	key, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		return errors.Wrapf(err, "failed to read private key for %s", org.Name)
	}

	if err := os.RemoveAll(org.WalletPath); err != nil {
		return errors.Wrapf(err, "failed to reset wallet for %s", org.Name)
	}
	wallet, err := gateway.NewFileSystemWallet(org.WalletPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create wallet for %s", org.Name)
	}

	identity := gateway.NewX509Identity(org.MSPID, string(cert), string(key))
	if err := wallet.Put(IdentityLabel, identity); err != nil {
		return errors.Wrapf(err, "failed to store identity for %s", org.Name)
	}
	return nil
}

// soleFile returns the single regular file in dir. An empty directory or
// more than one candidate is an error: ambiguous key material must not be
// provisioned.
func soleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	switch len(files) {
	case 0:
		return "", errors.Errorf("no files found in %s", dir)
	case 1:
		return files[0], nil
	default:
		return "", errors.Errorf("expected exactly one file in %s, found %d", dir, len(files))
	}
}
