package common

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          string
	ChannelName   string
	ContractName  string
	NetworkRoot   string
	WalletRoot    string
	CommitTimeout time.Duration
	QueryTimeout  time.Duration
	Orgs          []Organization
}

// Organization describes one configured network participant. The set of
// organizations is fixed at boot; two in the reference deployment, but
// any number can be listed in ORGS.
type Organization struct {
	Name        string // canonical name, e.g. org1.example.com
	MSPID       string // e.g. Org1MSP
	ProfilePath string // connection profile for this organization
	WalletPath  string // filesystem wallet directory
}

func LoadConfig() *Config {
	networkRoot := getEnv("NETWORK_ROOT", filepath.Join("..", "..", "test-network", "organizations"))
	walletRoot := getEnv("WALLET_ROOT", "wallet")

	var orgs []Organization
	for _, name := range strings.Split(getEnv("ORGS", "org1.example.com,org2.example.com"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		orgs = append(orgs, NewOrganization(name, networkRoot, walletRoot))
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		ChannelName:   getEnv("CHANNEL_NAME", "mychannel"),
		ContractName:  getEnv("CONTRACT_NAME", "claimslog"),
		NetworkRoot:   networkRoot,
		WalletRoot:    walletRoot,
		CommitTimeout: time.Duration(GetEnvInt("COMMIT_TIMEOUT_SECONDS", 100)) * time.Second,
		QueryTimeout:  time.Duration(GetEnvInt("QUERY_TIMEOUT_SECONDS", 60)) * time.Second,
		Orgs:          orgs,
	}
}

// NewOrganization derives the per-organization identifiers and paths from
// the canonical name, following the fabric-samples crypto layout.
func NewOrganization(name, networkRoot, walletRoot string) Organization {
	label := OrgLabel(name)
	return Organization{
		Name:        name,
		MSPID:       label + "MSP",
		ProfilePath: filepath.Join(networkRoot, "peerOrganizations", name, "connection-"+strings.ToLower(label)+".json"),
		WalletPath:  filepath.Join(walletRoot, name),
	}
}

// HealthKey is the per-organization field name in the /health response,
// e.g. fabricConnectedOrg1 for org1.example.com.
func (o Organization) HealthKey() string {
	return "fabricConnected" + OrgLabel(o.Name)
}

// OrgLabel returns the capitalized first DNS label of an organization
// name: "org1.example.com" -> "Org1".
func OrgLabel(name string) string {
	seg := name
	if i := strings.Index(name, "."); i >= 0 {
		seg = name[:i]
	}
	if seg == "" {
		return ""
	}
	return strings.ToUpper(seg[:1]) + seg[1:]
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}
