// Command ledgerd is a small demonstration driver: it generates two
// accounts, mints a genesis supply, mines a second block that creates the
// recipient and transfers to it, validates the chain, and logs the chain
// length and both balances.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/varex83/awesome-blockchain-go/core"
	"github.com/varex83/awesome-blockchain-go/display"
	"github.com/varex83/awesome-blockchain-go/keyring"
)

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println(" run -supply AMOUNT -transfer AMOUNT - mint a genesis supply, then mine a block transferring AMOUNT to a fresh account")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	supply := runCmd.Uint64("supply", 1_000_000, "genesis mint amount")
	transfer := runCmd.Uint64("transfer", 1_000, "amount to transfer in the second block")

	switch os.Args[1] {
	case "run":
		if err := runCmd.Parse(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
		if err := run(*supply, *transfer); err != nil {
			log.Fatal(err)
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

func run(supply, transferAmount uint64) error {
	keys := keyring.New()
	bc := core.NewBlockchain()

	treasury, err := keys.Generate()
	if err != nil {
		return fmt.Errorf("generating treasury account: %w", err)
	}
	treasuryKP, _ := keys.KeyPair(treasury)

	recipient, err := keys.Generate()
	if err != nil {
		return fmt.Errorf("generating recipient account: %w", err)
	}

	log.Printf("treasury account %s", display.Address(treasuryKP.PublicKey))

	genesis := core.NewBlock(nil, nil)
	genesis.AddTransaction(*core.NewTransaction(core.CreateAccountData{
		AccountID: treasury,
		PublicKey: treasuryKP.PublicKey,
	}, nil))
	genesis.AddTransaction(*core.NewTransaction(core.MintInitialSupplyData{
		To:     treasury,
		Amount: core.BalanceFromUint64(supply),
	}, nil))

	target := bc.GetLatestTarget()
	log.Printf("genesis target: %s", core.FormatCompact(target))

	if err := bc.AppendBlock(genesis); err != nil {
		return fmt.Errorf("appending genesis block: %w", err)
	}

	recipientKP, _ := keys.KeyPair(recipient)
	createRecipient := core.NewTransaction(core.CreateAccountData{
		AccountID: recipient,
		PublicKey: recipientKP.PublicKey,
	}, nil)

	transferTx := core.NewTransaction(core.TransferData{
		To:     recipient,
		Amount: core.BalanceFromUint64(transferAmount),
	}, &treasury)
	transferTx.Sign(treasuryKP)

	prevHash := bc.LastBlockHash()
	prevNum := bc.LastBlockNumber()
	second := core.NewBlock(prevHash, prevNum)
	second.AddTransaction(*createRecipient)
	second.AddTransaction(*transferTx)

	if err := bc.AppendBlock(second); err != nil {
		return fmt.Errorf("appending transfer block: %w", err)
	}

	if err := bc.Validate(); err != nil {
		return fmt.Errorf("chain failed validation: %w", err)
	}

	treasuryAcct, _ := bc.GetAccount(treasury)
	recipientAcct, _ := bc.GetAccount(recipient)

	log.Printf("chain length: %d", bc.Len())
	log.Printf("treasury balance: %s", treasuryAcct.Balance.String())
	log.Printf("recipient balance: %s", recipientAcct.Balance.String())
	log.Printf("recipient address: %s", display.Address(recipientAcct.PublicKey))

	return nil
}
