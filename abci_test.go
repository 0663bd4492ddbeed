package burnsplit_test

import (
	"fmt"
	"strings"
	"testing"

	pkerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
)

func TestCreateErrorResult(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantLog  string
		wantCode uint32
	}{
		"stdlib error is hidden": {
			err:      fmt.Errorf("base"),
			wantLog:  "internal error",
			wantCode: 1,
		},
		"pkg/errors error is hidden": {
			err:      pkerr.New("dave"),
			wantLog:  "internal error",
			wantCode: 1,
		},
		"registered error": {
			err:      errors.Wrap(errors.ErrUnauthorized, "not the owner"),
			wantLog:  "not the owner: unauthorized",
			wantCode: errors.ErrUnauthorized.ABCICode(),
		},
		"debug mode reveals internal errors": {
			err:      fmt.Errorf("base"),
			debug:    true,
			wantLog:  "base",
			wantCode: 1,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := burnsplit.DeliverTxError(tc.err, tc.debug)
			assert.True(t, strings.HasPrefix(dres.Log, "cannot deliver tx: "+tc.wantLog), dres.Log)
			assert.Equal(t, tc.wantCode, dres.Code)

			cres := burnsplit.CheckTxError(tc.err, tc.debug)
			assert.True(t, strings.HasPrefix(cres.Log, "cannot check tx: "+tc.wantLog), cres.Log)
			assert.Equal(t, tc.wantCode, cres.Code)
		})
	}
}

func TestCreateResults(t *testing.T) {
	d, msg := []byte("990000"), "got it"
	dres := burnsplit.DeliverResult{
		Data: d,
		Log:  msg,
		Tags: []common.KVPair{burnsplit.MethodTag("execute")},
	}
	ad := dres.ToABCI()
	assert.EqualValues(t, d, ad.Data)
	assert.Equal(t, msg, ad.Log)
	assert.Len(t, ad.Tags, 1)
	assert.Equal(t, "execute", dres.Tag("method"))
	assert.Equal(t, "", dres.Tag("missing"))

	cres := burnsplit.CheckResult{Log: "aok"}
	ac := cres.ToABCI()
	assert.Equal(t, "aok", ac.Log)
	assert.Empty(t, ac.Data)
}

func TestResultOrError(t *testing.T) {
	res := burnsplit.DeliverOrError(nil, errors.ErrMalformedRequest, false)
	assert.Equal(t, errors.ErrMalformedRequest.ABCICode(), res.Code)

	res = burnsplit.DeliverOrError(&burnsplit.DeliverResult{Log: "ok"}, nil, false)
	assert.Equal(t, uint32(errors.SuccessABCICode), res.Code)
	assert.Equal(t, "ok", res.Log)

	cres := burnsplit.CheckOrError(nil, errors.ErrUnauthorized, false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), cres.Code)
}
