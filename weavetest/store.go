package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) (db burnsplit.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "burnsplit-")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}

	commit, err := iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return commit, func() {
		commit.Close()
		os.RemoveAll(dbpath)
	}
}

// NewAddress returns a deterministic account address derived from given
// seed. Use it when a test needs a few distinct, human recognizable
// addresses.
func NewAddress(seed string) burnsplit.Address {
	return burnsplit.NewAddress([]byte(seed))
}

// MustParseAddress returns the address of given bech32 representation or
// panics.
func MustParseAddress(enc string) burnsplit.Address {
	addr, err := burnsplit.ParseAddress(enc)
	if err != nil {
		panic(err)
	}
	return addr
}
