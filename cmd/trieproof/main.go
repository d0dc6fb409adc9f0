package main

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	log "github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/runtime-machines/merkle-trees-go/config"
	"github.com/runtime-machines/merkle-trees-go/internal/proof"
	"github.com/runtime-machines/merkle-trees-go/pkg/trie/ethereum"
	"github.com/runtime-machines/merkle-trees-go/pkg/util"
)

var app = cli.NewApp()

var verifyCommand = cli.Command{
	Name:  "verify",
	Usage: "verify a Merkle Patricia Trie proof from a witness file",
	Description: "The verify command replays a trie witness against a root hash.\n" +
		"\ttrieproof verify --root 0x... --key 0x... --proof witness.txt",
	Action: verify,
	Flags:  []cli.Flag{config.RootFlag, config.KeyFlag, config.ProofFlag, config.VerbosityFlag},
}

var receiptCommand = cli.Command{
	Name:  "receipt",
	Usage: "fetch a transaction receipt and verify its inclusion proof",
	Description: "The receipt command rebuilds the receipt trie of the transaction's\n" +
		"\tblock, extracts the witness and verifies it against the header root.\n" +
		"\ttrieproof receipt --endpoint https://... --tx 0x...",
	Action: receipt,
	Flags:  []cli.Flag{config.EndpointFlag, config.TxFlag, config.VerbosityFlag},
}

var (
	Version = "0.1.0"
)

// init initializes CLI
func init() {
	app.Name = "trieproof"
	app.Usage = "Merkle Patricia Trie proof verifier"
	app.Version = Version
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		&verifyCommand,
		&receiptCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startLogger(ctx *cli.Context) error {
	logger := log.Root()
	handler := logger.GetHandler()
	var lvl log.Lvl

	if lvlToInt, err := strconv.Atoi(ctx.String(config.VerbosityFlag.Name)); err == nil {
		lvl = log.Lvl(lvlToInt)
	} else if lvl, err = log.LvlFromString(ctx.String(config.VerbosityFlag.Name)); err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}

func verify(ctx *cli.Context) error {
	if err := startLogger(ctx); err != nil {
		return err
	}
	root := common.HexToHash(ctx.String(config.RootFlag.Name))
	key, err := util.FromHexString(ctx.String(config.KeyFlag.Name))
	if err != nil {
		return err
	}
	nodes, err := readWitness(ctx.String(config.ProofFlag.Name))
	if err != nil {
		return err
	}
	log.Info("verifying witness", "root", root.Hex(), "key", ctx.String(config.KeyFlag.Name), "nodes", len(nodes))

	value, err := ethereum.VerifyProof(root, nodes, key)
	if err != nil {
		return errors.WithMessage(err, "witness rejected")
	}
	if value == nil {
		log.Info("witness proves the key absent from the trie")
		return nil
	}
	log.Info("witness proves the key present", "value", common.Bytes2Hex(value))
	return nil
}

func receipt(ctx *cli.Context) error {
	if err := startLogger(ctx); err != nil {
		return err
	}
	client, err := ethclient.Dial(ctx.String(config.EndpointFlag.Name))
	if err != nil {
		return errors.Wrap(err, "dial endpoint")
	}
	txHash := common.HexToHash(ctx.String(config.TxFlag.Name))

	target, err := client.TransactionReceipt(context.Background(), txHash)
	if err != nil {
		return errors.Wrap(err, "fetch receipt")
	}
	block, err := client.BlockByHash(context.Background(), target.BlockHash)
	if err != nil {
		return errors.Wrap(err, "fetch block")
	}

	receipts := make(types.Receipts, 0, len(block.Transactions()))
	for _, tx := range block.Transactions() {
		r, err := client.TransactionReceipt(context.Background(), tx.Hash())
		if err != nil {
			return errors.Wrapf(err, "fetch receipt %s", tx.Hash())
		}
		receipts = append(receipts, r)
	}

	idx := uint(target.TransactionIndex)
	prf, err := proof.Get(receipts, idx)
	if err != nil {
		return err
	}
	proven, err := proof.VerifyReceipt(block.ReceiptHash(), prf, idx)
	if err != nil {
		return err
	}
	log.Info("receipt proof verified",
		"block", block.NumberU64(),
		"index", idx,
		"root", block.ReceiptHash().Hex(),
		"status", proven.Status,
		"gasUsed", proven.CumulativeGasUsed)
	return nil
}

// readWitness loads one hex-encoded proof node per line; blank lines
// and #-comments are skipped.
func readWitness(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open witness file")
	}
	defer f.Close()

	var nodes [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		node, err := util.FromHexString(line)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read witness file")
	}
	return nodes, nil
}
