package app

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/store/iavl"
	"github.com/iov-one/burnsplit/weavetest"
)

type keyInitializer struct {
	err error
}

func (i keyInitializer) FromGenesis(opts burnsplit.Options, db burnsplit.KVStore) error {
	var val string
	if err := opts.ReadOptions("test", &val); err != nil {
		return err
	}
	if err := db.Set([]byte("genesis"), []byte(val)); err != nil {
		return err
	}
	return i.err
}

func TestRuntime(t *testing.T) {
	Convey("Given a runtime over a fresh store", t, func() {
		db := iavl.NewMemCommitStore()
		h := &weavetest.Handler{
			Writes: map[string]string{"written": "yes"},
			DeliverResult: burnsplit.DeliverResult{
				Data: []byte("ok"),
				Tags: []common.KVPair{burnsplit.MethodTag("execute")},
			},
		}
		r := NewRouter()
		r.Handle(&pingMsg{}, h)
		qr := NewQueryRouter()
		qr.Register("/echo", echoQuery{})
		rt := NewRuntime(db, r, NewTxDecoder(testCodec()), qr, keyInitializer{})
		ctx := context.Background()
		tx := &weavetest.Tx{Msg: &pingMsg{}}

		Convey("Requests are rejected before instantiation", func() {
			_, err := rt.ExecuteTx(ctx, tx)
			So(errors.ErrState.Is(err), ShouldBeTrue)
			So(h.CallCount(), ShouldEqual, 0)
		})

		Convey("Instantiate stores the chain id and runs initializers", func() {
			res, err := rt.Instantiate(ctx, "test-chain", burnsplit.Options{"test": []byte(`"value"`)})
			So(err, ShouldBeNil)
			So(res.Tag("method"), ShouldEqual, "instantiate")

			chainID, err := rt.ChainID()
			So(err, ShouldBeNil)
			So(chainID, ShouldEqual, "test-chain")

			val, err := db.Get([]byte("genesis"))
			So(err, ShouldBeNil)
			So(string(val), ShouldEqual, "value")

			Convey("Instantiate cannot be repeated", func() {
				_, err := rt.Instantiate(ctx, "other-chain", nil)
				So(errors.ErrUnauthorized.Is(err), ShouldBeTrue)
			})

			Convey("Successful execution is committed", func() {
				before, err := rt.LatestVersion()
				So(err, ShouldBeNil)

				res, err := rt.Execute(ctx, []byte(`{"msg": {}}`))
				So(err, ShouldBeNil)
				So(string(res.Data), ShouldEqual, "ok")
				So(res.Tag("method"), ShouldEqual, "execute")

				after, err := rt.LatestVersion()
				So(err, ShouldBeNil)
				So(after.Version, ShouldEqual, before.Version+1)

				val, err := db.Get([]byte("written"))
				So(err, ShouldBeNil)
				So(string(val), ShouldEqual, "yes")
			})

			Convey("Failed execution leaves no trace", func() {
				h.DeliverErr = errors.ErrAmount
				before, err := rt.LatestVersion()
				So(err, ShouldBeNil)

				_, err = rt.ExecuteTx(ctx, tx)
				So(errors.ErrAmount.Is(err), ShouldBeTrue)

				after, err := rt.LatestVersion()
				So(err, ShouldBeNil)
				So(after.Version, ShouldEqual, before.Version)

				val, err := db.Get([]byte("written"))
				So(err, ShouldBeNil)
				So(val, ShouldBeNil)
			})

			Convey("Check never writes", func() {
				_, err := rt.Check(ctx, []byte(`{}`))
				So(err, ShouldBeNil)
				So(h.CheckCallCount(), ShouldEqual, 1)

				val, err := db.Get([]byte("written"))
				So(err, ShouldBeNil)
				So(val, ShouldBeNil)
			})

			Convey("Malformed requests never reach the handler", func() {
				_, err := rt.Execute(ctx, []byte(`{"msg": {"unknown": {}}}`))
				So(errors.ErrMalformedRequest.Is(err), ShouldBeTrue)
				So(h.CallCount(), ShouldEqual, 0)
			})

			Convey("Unrouted messages are malformed", func() {
				_, err := rt.Execute(ctx, []byte(`{"msg": {"amount": {"amount": "1"}}}`))
				So(errors.ErrMalformedRequest.Is(err), ShouldBeTrue)
			})

			Convey("Queries are dispatched by path", func() {
				models, err := rt.Query("/echo", []byte("data"))
				So(err, ShouldBeNil)
				So(len(models), ShouldEqual, 1)
				So(string(models[0].Value), ShouldEqual, "data")

				_, err = rt.Query("/missing", nil)
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)
			})
		})

		Convey("Failed instantiation is not committed", func() {
			rt := NewRuntime(db, r, NewTxDecoder(testCodec()), qr, keyInitializer{err: errors.ErrInput})
			_, err := rt.Instantiate(ctx, "test-chain", burnsplit.Options{"test": []byte(`"value"`)})
			So(errors.ErrInput.Is(err), ShouldBeTrue)

			chainID, err := rt.ChainID()
			So(err, ShouldBeNil)
			So(chainID, ShouldEqual, "")
			val, err := db.Get([]byte("genesis"))
			So(err, ShouldBeNil)
			So(val, ShouldBeNil)
		})

		Convey("Invalid chain id is rejected", func() {
			_, err := rt.Instantiate(ctx, "x", nil)
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		})
	})
}

func TestNewResult(t *testing.T) {
	Convey("Results are printable", t, func() {
		res := NewResult(&burnsplit.DeliverResult{
			Data: []byte("10"),
			Tags: []common.KVPair{burnsplit.MethodTag("execute")},
		}, nil, false)
		So(res.Code, ShouldEqual, 0)
		So(res.Data, ShouldEqual, "10")
		So(res.Tags["method"], ShouldEqual, "execute")

		res = NewResult(nil, errors.Wrap(errors.ErrUnauthorized, "not the owner"), false)
		So(res.Code, ShouldEqual, errors.ErrUnauthorized.ABCICode())
		So(res.Log, ShouldStartWith, "cannot deliver tx: ")
	})
}
