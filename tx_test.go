package burnsplit_test

import (
	"testing"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/weavetest"
)

type otherMsg struct{}

func (otherMsg) Path() string    { return "test/other" }
func (otherMsg) Validate() error { return nil }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      burnsplit.Tx
		dest    interface{}
		wantErr *errors.Error
	}{
		"success": {
			tx:   &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}},
			dest: &weavetest.Msg{},
		},
		"message validation error is returned": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg", Err: errors.ErrInput}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrInput,
		},
		"message type mismatch": {
			tx:      &weavetest.Tx{Msg: otherMsg{}},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"destination must be a pointer": {
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{}},
			dest:    weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"missing message": {
			tx:      &weavetest.Tx{},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrType,
		},
		"transaction error": {
			tx:      &weavetest.Tx{Err: errors.ErrMalformedRequest},
			dest:    &weavetest.Msg{},
			wantErr: errors.ErrMalformedRequest,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := burnsplit.LoadMsg(tc.tx, tc.dest); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestLoadMsgCopiesValue(t *testing.T) {
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/msg"}}
	var msg weavetest.Msg
	if err := burnsplit.LoadMsg(tx, &msg); err != nil {
		t.Fatalf("cannot load message: %s", err)
	}
	if msg.RoutePath != "test/msg" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if got := burnsplit.GetPath(tx); got != "test/msg" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := burnsplit.GetPath(&weavetest.Tx{}); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
}
