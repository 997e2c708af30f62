package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/base-org/keccaksig/signer"
)

var errMessageArg = errors.New("expected exactly one message argument")

func newApp(conf Config, logger *zap.Logger, out io.Writer) *cli.App {
	keyFlag := &cli.StringFlag{
		Name:  "key",
		Usage: "hex-encoded secp256k1 private key (defaults to $KECCAKSIG_PRIVATE_KEY)",
	}

	app := &cli.App{
		Name:  "keccaksig",
		Usage: "Keccak-256 hashing and secp256k1 compact signing",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "treat the message argument as 0x-prefixed hex instead of UTF-8 text",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "hash",
				Usage:     "print the Keccak-256 digest of a message",
				ArgsUsage: "<message>",
				Action: func(c *cli.Context) error {
					message, err := messageArg(c)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(out, signer.Keccak256(message).Hex())
					return err
				},
			},
			{
				Name:      "sign",
				Usage:     "print the compact r||s signature of a message",
				ArgsUsage: "<message>",
				Flags:     []cli.Flag{keyFlag},
				Action: func(c *cli.Context) error {
					return runSign(c, conf, logger, out, (*signer.PrivateKeySigner).Sign)
				},
			},
			{
				Name:      "sign-recoverable",
				Usage:     "sign through the recoverable path and print r||s without the recovery id",
				ArgsUsage: "<message>",
				Flags:     []cli.Flag{keyFlag},
				Action: func(c *cli.Context) error {
					return runSign(c, conf, logger, out, (*signer.PrivateKeySigner).SignRecoverable)
				},
			},
		},
	}
	app.Writer = out
	return app
}

type signFunc func(*signer.PrivateKeySigner, []byte) (signer.Signature, error)

func runSign(c *cli.Context, conf Config, logger *zap.Logger, out io.Writer, sign signFunc) error {
	message, err := messageArg(c)
	if err != nil {
		return err
	}

	keyHex := c.String("key")
	if keyHex == "" {
		keyHex = conf.PrivateKeyHex
	}
	if keyHex == "" {
		return fmt.Errorf("no private key: set --key or KECCAKSIG_PRIVATE_KEY")
	}
	key, err := signer.HexToPrivateKey(keyHex)
	if err != nil {
		return fmt.Errorf("could not load private key: %w", err)
	}

	s, err := signer.NewPrivateKeySigner(key, signer.WithLogger(logger.With(zap.String("command", c.Command.Name))))
	if err != nil {
		return err
	}
	sig, err := sign(s, message)
	if err != nil {
		return fmt.Errorf("signing failed: %w", err)
	}

	_, err = fmt.Fprintln(out, sig.String())
	return err
}

func messageArg(c *cli.Context) ([]byte, error) {
	if c.NArg() != 1 {
		return nil, errMessageArg
	}
	arg := c.Args().First()
	if !c.Bool("hex") {
		return []byte(arg), nil
	}
	message, err := hexutil.Decode(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex message: %w", err)
	}
	return message, nil
}
