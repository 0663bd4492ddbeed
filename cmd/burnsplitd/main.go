package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/app"
	burnsplitd "github.com/iov-one/burnsplit/cmd/burnsplitd/app"
	"github.com/iov-one/burnsplit/errors"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".burnsplit")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("burnsplitd")
	fmt.Println("          Deposit splitting module")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Instantiate the state from a genesis file")
	fmt.Println("execute   Execute a request read from a file, or - for stdin")
	fmt.Println("check     Check a request without executing it")
	fmt.Println("query     Query the state: query <path> [data]")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.burnsplit")`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	conf, err := loadConfig(*varHome)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(conf)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = initCmd(conf, logger, rest)
	case "execute":
		err = executeCmd(conf, logger, rest)
	case "check":
		err = checkCmd(conf, logger, rest)
	case "query":
		err = queryCmd(conf, logger, rest)
	case "version":
		fmt.Println(burnsplit.Version())
	default:
		err = errors.Wrapf(errors.ErrInput, "unknown command: %s", cmd)
	}

	switch {
	case err == errRequestFailed:
		os.Exit(2)
	case err != nil:
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

// errRequestFailed is returned when the result of a failed request was
// already printed.
var errRequestFailed = errors.ErrHuman.New("request failed")

func newLogger(conf *viper.Viper) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr)).
		With("module", "burnsplit")
	lvl, err := log.AllowLevel(conf.GetString(confLogLevel))
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return log.NewFilter(logger, lvl), nil
}

func initCmd(conf *viper.Viper, logger log.Logger, args []string) error {
	if len(args) != 1 {
		return errors.Wrap(errors.ErrInput, "usage: init <genesis.json>")
	}
	gen, err := app.LoadGenesis(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(conf.GetString(confHome), 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	kv, err := burnsplitd.CommitKVStore(dbPath(conf))
	if err != nil {
		return err
	}
	defer kv.Close()

	res, err := burnsplitd.Instantiate(context.Background(), kv, gen, logger)
	return printResult(app.NewResult(res, err, conf.GetBool(confDebug)))
}

func executeCmd(conf *viper.Viper, logger log.Logger, args []string) error {
	raw, err := readRequest(args)
	if err != nil {
		return err
	}
	kv, err := burnsplitd.CommitKVStore(dbPath(conf))
	if err != nil {
		return err
	}
	defer kv.Close()

	rt, err := burnsplitd.Application(kv, logger, conf.GetBool(confDebug))
	if err != nil {
		return err
	}
	res, err := rt.Execute(context.Background(), raw)
	return printResult(app.NewResult(res, err, rt.Debug()))
}

func checkCmd(conf *viper.Viper, logger log.Logger, args []string) error {
	raw, err := readRequest(args)
	if err != nil {
		return err
	}
	kv, err := burnsplitd.CommitKVStore(dbPath(conf))
	if err != nil {
		return err
	}
	defer kv.Close()

	rt, err := burnsplitd.Application(kv, logger, conf.GetBool(confDebug))
	if err != nil {
		return err
	}
	res, err := rt.Check(context.Background(), raw)
	resp := burnsplit.CheckOrError(res, err, rt.Debug())
	return printResult(app.Result{Code: resp.Code, Log: resp.Log, Data: string(resp.Data)})
}

func queryCmd(conf *viper.Viper, logger log.Logger, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.Wrap(errors.ErrInput, "usage: query <path> [data]")
	}
	var data []byte
	if len(args) == 2 {
		data = []byte(args[1])
	}
	kv, err := burnsplitd.CommitKVStore(dbPath(conf))
	if err != nil {
		return err
	}
	defer kv.Close()

	rt, err := burnsplitd.Application(kv, logger, conf.GetBool(confDebug))
	if err != nil {
		return err
	}
	models, err := rt.Query(args[0], data)
	if err != nil {
		return err
	}
	type model struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	out := make([]model, len(models))
	for i, m := range models {
		out[i] = model{Key: string(m.Key), Value: string(m.Value)}
	}
	return printJSON(out)
}

// readRequest reads the request from the file named by the only argument,
// or stdin when the argument is "-".
func readRequest(args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, errors.Wrap(errors.ErrInput, "usage: <request.json | ->")
	}
	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot read request: %s", err)
	}
	return raw, nil
}

func printResult(res app.Result) error {
	if err := printJSON(res); err != nil {
		return err
	}
	if res.Code != errors.SuccessABCICode {
		return errRequestFailed
	}
	return nil
}

func printJSON(v interface{}) error {
	raw, err := burnsplit.JSON.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	fmt.Println(string(raw))
	return nil
}
