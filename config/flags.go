// Copyright 2024 Runtime Machines
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli/v2"
)

var (
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Supports levels crit (silent) to trce (trace)",
		Value: log.LvlInfo.String(),
	}
)

// Verify command flags
var (
	RootFlag = &cli.StringFlag{
		Name:     "root",
		Usage:    "Trie root hash the proof is checked against (0x-prefixed hex)",
		Required: true,
	}

	KeyFlag = &cli.StringFlag{
		Name:     "key",
		Usage:    "Lookup key (0x-prefixed hex)",
		Required: true,
	}

	ProofFlag = &cli.StringFlag{
		Name:     "proof",
		Usage:    "Path to the witness file: one hex-encoded proof node per line",
		Required: true,
	}
)

// Receipt command flags
var (
	EndpointFlag = &cli.StringFlag{
		Name:     "endpoint",
		Usage:    "RPC endpoint of the chain to fetch the receipt from",
		Required: true,
	}

	TxFlag = &cli.StringFlag{
		Name:     "tx",
		Usage:    "Transaction hash whose receipt inclusion is verified",
		Required: true,
	}
)
