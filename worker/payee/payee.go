package payee

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"diamond/core"
	"diamond/pkg/mtg"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

const (
	checkpointKey = "outputs_checkpoint"
	limit         = 500
)

type (
	// Payee payee worker
	Payee struct {
		db                *db.DB
		system            *core.System
		dapp              *core.Wallet
		propertyStore     property.Store
		userStore         core.UserStore
		walletStore       core.WalletStore
		tokenStore        core.ITokenStore
		blacklistStore    core.IBlacklistStore
		priceStore        core.IPriceStore
		proposalStore     core.ProposalStore
		transactionStore  core.TransactionStore
		oracleSignerStore core.OracleSignerStore
		walletz           core.IWalletService
		proposalService   core.ProposalService
		oracleService     core.IPriceOracleService
	}
)

// NewPayee new payee
func NewPayee(
	db *db.DB,
	system *core.System,
	dapp *core.Wallet,
	propertyStore property.Store,
	userStore core.UserStore,
	walletStore core.WalletStore,
	tokenStore core.ITokenStore,
	blacklistStore core.IBlacklistStore,
	priceStore core.IPriceStore,
	proposalStore core.ProposalStore,
	transactionStore core.TransactionStore,
	oracleSignerStr core.OracleSignerStore,
	walletz core.IWalletService,
	proposalService core.ProposalService,
	oracleService core.IPriceOracleService) *Payee {

	payee := Payee{
		db:                db,
		system:            system,
		dapp:              dapp,
		propertyStore:     propertyStore,
		userStore:         userStore,
		walletStore:       walletStore,
		tokenStore:        tokenStore,
		blacklistStore:    blacklistStore,
		priceStore:        priceStore,
		proposalStore:     proposalStore,
		transactionStore:  transactionStore,
		oracleSignerStore: oracleSignerStr,
		walletz:           walletz,
		proposalService:   proposalService,
		oracleService:     oracleService,
	}

	return &payee
}

// Run run worker
func (w *Payee) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "payee")
	ctx = logger.WithContext(ctx, log)

	dur := time.Millisecond
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
			if err := w.run(ctx); err == nil {
				dur = 100 * time.Millisecond
			} else {
				dur = 500 * time.Millisecond
			}
		}
	}
}

func (w *Payee) run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "payee")

	v, err := w.propertyStore.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get error")
		return err
	}

	outputs, err := w.walletStore.ListOutputs(ctx, v.Int64(), limit)
	if err != nil {
		log.WithError(err).Errorln("wallets.ListOutputs")
		return err
	}

	if len(outputs) <= 0 {
		return errors.New("no more outputs")
	}

	for _, u := range outputs {
		if err := w.handleOutput(ctx, u); err != nil {
			return err
		}

		if err := w.propertyStore.Save(ctx, checkpointKey, u.ID); err != nil {
			log.WithError(err).Errorln("property.Save:", u.ID)
			return err
		}
	}

	return nil
}

func (w *Payee) handleOutput(ctx context.Context, output *core.Output) error {
	log := logger.FromContext(ctx).WithField("output", output.TraceID)
	ctx = logger.WithContext(ctx, log)

	message := w.decodeMemo(output.Memo)

	if action, err := core.DecodeTransactionAction(message); err == nil && len(action.Body) > 0 {
		message = action.Body
	}

	// handle price records pushed by the oracle feeder
	if priceData, err := w.decodePriceTransaction(ctx, message); err == nil {
		return w.handlePriceEvent(ctx, output, priceData)
	}

	// handle signed member proposal payloads
	if member, action, body, err := core.DecodeMemberProposalTransactionAction(message, w.system.Members); err == nil && member != nil {
		return w.handleCreateProposalEvent(ctx, output, member, action, output.TraceID, body)
	}

	if output.Sender == "" {
		return nil
	}

	var action core.ActionType
	{
		var v int
		body, err := mtg.Scan(message, &v)
		if err != nil {
			log.WithError(err).Errorln("scan action failed")
			return nil
		}
		message = body
		action = core.ActionType(v)
	}

	log = log.WithField("action", action.String())
	ctx = logger.WithContext(ctx, log)

	switch action {
	case core.ActionTypeProposalMake:
		return w.handleMakeProposal(ctx, output, message)
	case core.ActionTypeProposalShout:
		return w.handleShoutProposal(ctx, output, message)
	case core.ActionTypeProposalVote:
		return w.handleVoteProposal(ctx, output, message)
	default:
		// transaction trace id as order id, different from output trace id
		var followID uuid.UUID
		message, err := mtg.Scan(message, &followID)
		if err != nil {
			log.WithError(err).Errorln("scan follow error")
			return nil
		}

		user := core.User{UserID: output.Sender}
		if err := w.userStore.Save(ctx, &user); err != nil {
			return err
		}

		return w.handleUserAction(ctx, output, action, output.Sender, followID.String(), message)
	}
}

func (w *Payee) handleUserAction(ctx context.Context, output *core.Output, actionType core.ActionType, userID, followID string, body []byte) error {
	switch actionType {
	case core.ActionTypeMint:
		return w.handleMintEvent(ctx, output, userID, followID, body)
	case core.ActionTypePurchase:
		return w.handlePurchaseEvent(ctx, output, userID, followID, body)
	default:
		return w.handleRefundEvent(ctx, output, userID, followID, core.ActionTypeRefundTransfer, core.ErrUnknown)
	}
}

func (w *Payee) decodePriceTransaction(ctx context.Context, message []byte) (*core.PriceData, error) {
	var priceData core.PriceData
	if err := priceData.UnmarshalBinary(message); err != nil {
		return nil, err
	}

	if priceData.Signature == nil {
		return nil, errors.New("missing price signature")
	}

	return &priceData, nil
}

func (w *Payee) decodeMemo(memo string) []byte {
	if b, err := base64.StdEncoding.DecodeString(memo); err == nil {
		return b
	}

	if b, err := base64.URLEncoding.DecodeString(memo); err == nil {
		return b
	}

	return []byte(memo)
}
