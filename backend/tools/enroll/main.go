package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/Ya-m-i/agri-fabric/backend/pkg/common"
	"github.com/Ya-m-i/agri-fabric/backend/pkg/fabricclient"
)

// enroll provisions each organization's admin identity into its wallet.
// Run once before starting the claims service; re-running replaces any
// previously provisioned credentials.
func main() {
	app := &cli.App{
		Name:  "enroll",
		Usage: "provision admin identities into per-organization wallets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network-root",
				Value: filepath.Join("..", "..", "test-network", "organizations"),
				Usage: "directory holding the network crypto material",
			},
			&cli.StringFlag{
				Name:  "wallet-root",
				Value: "wallet",
				Usage: "wallet directory to (re)provision",
			},
			&cli.StringFlag{
				Name:  "orgs",
				Value: "org1.example.com,org2.example.com",
				Usage: "comma-separated organization names",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	networkRoot := c.String("network-root")
	walletRoot := c.String("wallet-root")

	failed := 0
	for _, name := range strings.Split(c.String("orgs"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		org := common.NewOrganization(name, networkRoot, walletRoot)
		if err := fabricclient.ProvisionAdmin(org, networkRoot); err != nil {
			log.Printf("Failed to provision %s: %v", name, err)
			failed++
			continue
		}
		log.Printf("Provisioned admin identity for %s (%s)", name, org.MSPID)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d organization(s) failed to provision", failed), 1)
	}
	return nil
}
