// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bewd-social/shardd/account"
	"github.com/bewd-social/shardd/nodes"
)

const defaultIdentityFile = "shard-cli.identity"

type metadata struct {
	identityFile string
	key          *account.PrivateKey
	connect      string
	fingerprint  string
	nodes        string
	resolve      nodes.Resolver
	testnet      bool
	verbose      bool
	e            io.Writer
	w            io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "shard-cli"
	app.Usage = "client for the shardd fractional post ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " accounts of `NETWORK` [shards|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: defaultIdentityFile,
			Usage: " private key `FILE` used to sign requests",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " shardd RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected SHA3-256 `HEX` of the server certificate",
		},
		cli.StringFlag{
			Name:  "nodes, N",
			Value: "",
			Usage: " find the server from the TXT records of `DOMAIN`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new identity key in the identity file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "account",
			Usage:     "display the account of the identity",
			ArgsUsage: "\n   (* = required)",
			Action:    runAccount,
		},
		{
			Name:      "info",
			Usage:     "display shardd status",
			ArgsUsage: "\n   (* = required)",
			Action:    runInfo,
		},

		// shard ledger updates
		{
			Name:      "initialise-post",
			Usage:     "issue all shards of a new post to the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				cli.Uint64Flag{
					Name:  "decimal, d",
					Value: 0,
					Usage: " display precision `DIGITS`",
				},
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*display name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*display symbol `STRING`",
				},
				cli.Uint64Flag{
					Name:  "threshold, t",
					Value: 1,
					Usage: " builds needed to fractionalise `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "total, q",
					Value: 0,
					Usage: "*number of shards `COUNT`",
				},
				cli.BoolFlag{
					Name:  "rwa",
					Usage: " post is a real world asset",
				},
			},
			Action: runInitialisePost,
		},
		{
			Name:      "build",
			Usage:     "record a build of a post by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{postFlag},
			Action:    runBuild,
		},
		{
			Name:      "transfer-shard",
			Usage:     "move one shard of a post to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				receiverFlag,
				cli.Uint64Flag{
					Name:  "index, x",
					Value: 0,
					Usage: " local shard `INDEX` within the post",
				},
			},
			Action: runTransferShard,
		},
		{
			Name:      "approve",
			Usage:     "allow a spender to use part of the identity's balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				spenderFlag,
				amountFlag,
				cli.Uint64Flag{
					Name:  "expiration, e",
					Value: 0,
					Usage: "*last ledger of the allowance `LEDGER`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "transfer",
			Usage:     "move a shard by global index to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				receiverFlag,
				cli.Uint64Flag{
					Name:  "index, x",
					Value: 0,
					Usage: " global shard `INDEX`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "spend an allowance to move balance between accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				receiverFlag,
				amountFlag,
			},
			Action: runTransferFrom,
		},
		{
			Name:      "burn",
			Usage:     "destroy part of the identity's balance",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{amountFlag},
			Action:    runBurn,
		},
		{
			Name:      "burn-from",
			Usage:     "spend an allowance to destroy another account's balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				fromFlag,
				amountFlag,
			},
			Action: runBurnFrom,
		},

		// shard ledger queries
		{
			Name:      "balance",
			Usage:     "aggregate balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runBalance,
		},
		{
			Name:      "allowance",
			Usage:     "remaining allowance of a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: " grantor `ACCOUNT` default is the identity",
				},
				spenderFlag,
			},
			Action: runAllowance,
		},
		{
			Name:      "metadata",
			Usage:     "decimals, name and symbol of a post",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{postFlag},
			Action:    runMetadata,
		},
		{
			Name:      "post",
			Usage:     "shard configuration and engagement state of a post",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{postFlag},
			Action:    runPost,
		},
		{
			Name:      "post-for-shard",
			Usage:     "post, local index and owner of a global shard",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "index, x",
					Value: 0,
					Usage: " global shard `INDEX`",
				},
			},
			Action: runPostForShard,
		},
		{
			Name:      "owners",
			Usage:     "list owners of a post's shards",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				startFlag,
				countFlag,
			},
			Action: runOwners,
		},
		{
			Name:      "holding",
			Usage:     "number of a post's shards held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				ownerFlag,
			},
			Action: runHolding,
		},
		{
			Name:      "live-until",
			Usage:     "last ledger at which a record is live",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "post",
					Usage: " record `KIND` [instance|post|account]",
				},
				cli.StringFlag{
					Name:  "key",
					Value: "",
					Usage: " post id or account `KEY`",
				},
			},
			Action: runLiveUntil,
		},

		// social layer
		{
			Name:      "create-profile",
			Usage:     "register a username for the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "username, u",
					Value: "",
					Usage: "*user `NAME`",
				},
			},
			Action: runCreateProfile,
		},
		{
			Name:      "profile",
			Usage:     "display the profile of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runProfile,
		},
		{
			Name:      "follow",
			Usage:     "follow another account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{followeeFlag},
			Action:    runFollow,
		},
		{
			Name:      "unfollow",
			Usage:     "stop following another account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{followeeFlag},
			Action:    runUnfollow,
		},
		{
			Name:      "following",
			Usage:     "list the accounts an account follows",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{ownerFlag},
			Action:    runFollowing,
		},
		{
			Name:      "send-message",
			Usage:     "send a message to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				receiverFlag,
				textFlag,
			},
			Action: runSendMessage,
		},
		{
			Name:      "messages",
			Usage:     "list messages from a sender to a receiver",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender",
					Value: "",
					Usage: " sending `ACCOUNT` default is the identity",
				},
				receiverFlag,
				startFlag,
				countFlag,
			},
			Action: runMessages,
		},
		{
			Name:      "create-post",
			Usage:     "publish a post written by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{textFlag},
			Action:    runCreatePost,
		},
		{
			Name:      "posts",
			Usage:     "list posts in creation order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				startFlag,
				countFlag,
			},
			Action: runPosts,
		},
		{
			Name:      "tokenise-post",
			Usage:     "create the shards of a post owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				cli.Uint64Flag{
					Name:  "total, q",
					Value: 0,
					Usage: "*number of shards `COUNT`",
				},
				cli.StringFlag{
					Name:  "uri",
					Value: "",
					Usage: " metadata `URI`",
				},
				cli.Uint64Flag{
					Name:  "threshold, t",
					Value: 1,
					Usage: " builds needed to fractionalise `COUNT`",
				},
				cli.BoolFlag{
					Name:  "rwa",
					Usage: " post is a real world asset",
				},
			},
			Action: runTokenisePost,
		},
		{
			Name:      "claim-shards",
			Usage:     "buy shards of a tokenised post",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				postFlag,
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 1,
					Usage: " shards to claim `COUNT`",
				},
				cli.Int64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: " payment offered `AMOUNT`",
				},
			},
			Action: runClaimShards,
		},
		{
			Name:      "post-info",
			Usage:     "tokenisation record of a post",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{postFlag},
			Action:    runPostInfo,
		},
		{
			Name:      "version",
			Usage:     "display shard-cli version",
			ArgsUsage: "\n   (* = required)",
			Action:    runVersion,
		},
	}

	// read the identity before any command runs
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		testnet := true
		switch network := c.GlobalString("network"); network {
		case "shards", "live":
			testnet = false
		case "testing", "test", "local":
		default:
			return fmt.Errorf("network: %q can only be shards/testing/local", network)
		}

		identityFile := c.GlobalString("identity")
		if verbose {
			fmt.Fprintf(e, "identity: %q\n", identityFile)
		}

		m := &metadata{
			identityFile: identityFile,
			connect:      c.GlobalString("connect"),
			fingerprint:  c.GlobalString("fingerprint"),
			nodes:        c.GlobalString("nodes"),
			resolve:      nodes.ResolveTXT,
			testnet:      testnet,
			verbose:      verbose,
			e:            e,
			w:            w,
		}

		if "generate" != command {
			key, err := readIdentity(identityFile, defaultIdentityFile == identityFile)
			if nil != err {
				return err
			}
			if nil != key && key.Test != testnet {
				return fmt.Errorf("identity: %q is not on network: %q", identityFile, c.GlobalString("network"))
			}
			m.key = key
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// flags shared by several commands
var (
	postFlag = cli.StringFlag{
		Name:  "post, P",
		Value: "",
		Usage: "*post `ID`",
	}
	receiverFlag = cli.StringFlag{
		Name:  "receiver, r",
		Value: "",
		Usage: "*receiving `ACCOUNT`",
	}
	spenderFlag = cli.StringFlag{
		Name:  "spender",
		Value: "",
		Usage: "*spending `ACCOUNT`",
	}
	fromFlag = cli.StringFlag{
		Name:  "from",
		Value: "",
		Usage: "*source `ACCOUNT`",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " `ACCOUNT` default is the identity",
	}
	followeeFlag = cli.StringFlag{
		Name:  "account, a",
		Value: "",
		Usage: "*followed `ACCOUNT`",
	}
	amountFlag = cli.Int64Flag{
		Name:  "amount, a",
		Value: 0,
		Usage: "*number of shards `AMOUNT`",
	}
	textFlag = cli.StringFlag{
		Name:  "text",
		Value: "",
		Usage: "*message or post `TEXT`",
	}
	startFlag = cli.Uint64Flag{
		Name:  "start, s",
		Value: 0,
		Usage: " start point `NUMBER`",
	}
	countFlag = cli.IntFlag{
		Name:  "count, c",
		Value: 20,
		Usage: " maximum records to output `COUNT`",
	}
)
