package cmd

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"diamond/core"
	messageservice "diamond/service/message"
	oracleservice "diamond/service/oracle"
	proposalservice "diamond/service/proposal"
	walletservice "diamond/service/wallet"
	"diamond/store/blacklist"
	"diamond/store/message"
	"diamond/store/oracle"
	"diamond/store/price"
	"diamond/store/proposal"
	"diamond/store/token"
	"diamond/store/transaction"
	"diamond/store/user"
	"diamond/store/wallet"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/pandodao/blst"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideSystem() *core.System {
	members := make([]*core.Member, 0, len(cfg.Group.Members))
	for _, m := range cfg.Group.Members {
		verifyKey, err := base64.StdEncoding.DecodeString(m.VerifyKey)
		if err != nil {
			panic(fmt.Errorf("decode verify key of member %s: %w", m.ClientID, err))
		}

		members = append(members, &core.Member{
			ClientID:  m.ClientID,
			Name:      m.Name,
			VerifyKey: verifyKey,
		})
	}

	paymentAssets, err := core.BuildPaymentAssetTable(toPaymentAssets(cfg.PaymentAssets))
	if err != nil {
		panic(err)
	}

	system := &core.System{
		Admins:         cfg.Group.Admins,
		ClientID:       cfg.Dapp.ClientID,
		Members:        members,
		Threshold:      cfg.Group.Threshold,
		VoteAsset:      cfg.Group.Vote.Asset,
		VoteAmount:     cfg.Group.Vote.Amount,
		PrivateKey:     decodeED25519Key(cfg.Group.PrivateKey),
		SignKey:        decodeED25519Key(cfg.Group.SignKey),
		PriceThreshold: uint8(cfg.Group.PriceSigns.Threshold),
		PaymentAssets:  paymentAssets,
		Location:       cfg.App.Location,
		Genesis:        cfg.App.Genesis,
		Version:        rootCmd.Version,
	}

	if err := system.Validate(); err != nil {
		panic(err)
	}

	return system
}

func toPaymentAssets(assets []core.PaymentAsset) []*core.PaymentAsset {
	out := make([]*core.PaymentAsset, len(assets))
	for idx := range assets {
		out[idx] = &assets[idx]
	}

	return out
}

func decodeED25519Key(s string) ed25519.PrivateKey {
	if s == "" {
		return nil
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return ed25519.PrivateKey(b)
}

func provideDapp() *core.Wallet {
	c, err := mixin.NewFromKeystore(&cfg.Dapp.Keystore)
	if err != nil {
		panic(err)
	}

	return &core.Wallet{
		Client: c,
		Pin:    cfg.Dapp.Pin,
	}
}

func provideOracleFeederWallet() *core.Wallet {
	c, err := mixin.NewFromKeystore(&cfg.PriceOracle.Keystore)
	if err != nil {
		panic(err)
	}

	return &core.Wallet{
		Client: c,
		Pin:    cfg.PriceOracle.Pin,
	}
}

func provideOracleSecretKey() *blst.PrivateKey {
	b, err := base64.StdEncoding.DecodeString(cfg.PriceOracle.SecretKey)
	if err != nil {
		panic(err)
	}

	var key blst.PrivateKey
	if err := key.FromBytes(b); err != nil {
		panic(err)
	}

	return &key
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideUserStore(db *db.DB) core.UserStore {
	return user.Cache(user.New(db), userCacheExp)
}

func provideWalletStore(db *db.DB) core.WalletStore {
	return wallet.New(db)
}

func provideTokenStore(db *db.DB) core.ITokenStore {
	return token.New(db)
}

func provideBlacklistStore(db *db.DB) core.IBlacklistStore {
	return blacklist.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideProposalStore(db *db.DB) core.ProposalStore {
	return proposal.New(db)
}

func provideTransactionStore(db *db.DB) core.TransactionStore {
	return transaction.New(db)
}

func provideOracleSignerStore(db *db.DB) core.OracleSignerStore {
	return oracle.NewSignerStore(db)
}

func provideMessageStore(db *db.DB) core.MessageStore {
	return message.New(db)
}

// ------------------service------------------------------------

func provideWalletService(dapp *core.Wallet) core.IWalletService {
	return walletservice.New(dapp)
}

func provideMessageService(client *mixin.Client) core.MessageService {
	return messageservice.New(client)
}

func providePriceOracleService(priceStore core.IPriceStore) core.IPriceOracleService {
	return oracleservice.New(provideConfig(), priceStore)
}

func provideProposalService(system *core.System, client *mixin.Client, messageStore core.MessageStore) core.ProposalService {
	return proposalservice.New(system, client, messageStore)
}
