package splitter

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

const (
	methodExecute  = "execute"
	methodSetPrice = "set_uluna_price"
)

// RegisterRoutes registers handlers for splitter message processing. The
// set price message is routed only when the oracle pricing mode is
// configured.
func RegisterRoutes(r burnsplit.Registry, conf Configuration, prices PriceStore) {
	r.Handle(&DistributeMsg{}, &distributeHandler{conf: conf, prices: prices})
	if conf.PricingMode == OraclePricing {
		r.Handle(&SetPriceMsg{}, &setPriceHandler{conf: conf, prices: prices})
	}
}

type distributeHandler struct {
	conf   Configuration
	prices PriceStore
}

var _ burnsplit.Handler = (*distributeHandler)(nil)

func (h *distributeHandler) Check(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.CheckResult, error) {
	dist, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &burnsplit.CheckResult{Log: dist.String()}, nil
}

func (h *distributeHandler) Deliver(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	dist, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	sender := tx.GetSender()
	burnsplit.GetLogger(ctx).Debug("distribute deposit",
		"sender", sender.String(),
		"deposit", dist.Deposit.String(),
		"token", dist.Token.String())

	return &burnsplit.DeliverResult{
		Data:    []byte(dist.Token.String()),
		Log:     dist.String(),
		Effects: dist.Effects(h.conf, sender),
		Tags:    []common.KVPair{burnsplit.MethodTag(methodExecute)},
	}, nil
}

// validate returns the computed distribution. Nothing is written to the
// database.
func (h *distributeHandler) validate(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*Distribution, error) {
	var msg DistributeMsg
	if err := burnsplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := tx.GetSender().Validate(); err != nil {
		return nil, errors.Wrap(err, "sender")
	}

	// Coins of other denominations are ignored. They are neither
	// consumed nor refunded.
	deposit := tx.GetFunds().AmountOf(h.conf.Denom)

	var price *coin.Amount
	if h.conf.PricingMode == OraclePricing && deposit.IsPositive() {
		p, err := h.prices.Price(db)
		if err != nil {
			return nil, errors.Wrap(err, "cannot convert deposit")
		}
		price = &p
	}

	dist, err := Split(h.conf, deposit, price)
	if err != nil {
		return nil, err
	}
	return &dist, nil
}

type setPriceHandler struct {
	conf   Configuration
	prices PriceStore
}

var _ burnsplit.Handler = (*setPriceHandler)(nil)

func (h *setPriceHandler) Check(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &burnsplit.CheckResult{}, nil
}

func (h *setPriceHandler) Deliver(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.prices.SetPrice(db, msg.Price); err != nil {
		return nil, errors.Wrap(err, "cannot set price")
	}
	burnsplit.GetLogger(ctx).Info("price updated", "price", msg.Price.String())
	return &burnsplit.DeliverResult{
		Tags: []common.KVPair{burnsplit.MethodTag(methodSetPrice)},
	}, nil
}

func (h *setPriceHandler) validate(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*SetPriceMsg, error) {
	var msg SetPriceMsg
	if err := burnsplit.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if sender := tx.GetSender(); !h.conf.Owner.Equals(sender) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not the owner", sender)
	}
	return &msg, nil
}
