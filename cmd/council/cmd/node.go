package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	ghandlers "github.com/gorilla/handlers"
	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"

	"boscoin.io/council/cmd/council/common"
	"boscoin.io/council/lib/block"
	libcommon "boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/metrics"
	"boscoin.io/council/lib/network/api"
	"boscoin.io/council/lib/node/runner"
	"boscoin.io/council/lib/storage"
	"boscoin.io/council/lib/transaction"
)

const (
	defaultBindURL  string      = "http://0.0.0.0:12345"
	defaultLogLevel logging.Lvl = logging.LvlInfo

	shutdownTimeout = 5 * time.Second
)

var (
	nodeCmd *cobra.Command

	flagStorageConfigString string
	flagBindURL             string = libcommon.GetENVValue("COUNCIL_BIND", defaultBindURL)
	flagTLSCertFile         string = libcommon.GetENVValue("COUNCIL_TLS_CERT", "council.crt")
	flagTLSKeyFile          string = libcommon.GetENVValue("COUNCIL_TLS_KEY", "council.key")
	flagGovernance          string = libcommon.GetENVValue("COUNCIL_GOVERNANCE", "")
	flagGenesis             string = libcommon.GetENVValue("COUNCIL_GENESIS", "")
	flagBlockTime           string = libcommon.GetENVValue("COUNCIL_BLOCK_TIME", libcommon.DefaultBlockTime.String())
	flagTxsLimit            string = libcommon.GetENVValue("COUNCIL_TXS_LIMIT", strconv.Itoa(libcommon.DefaultTxsLimit))
	flagOpsLimit            string = libcommon.GetENVValue("COUNCIL_OPS_LIMIT", strconv.Itoa(libcommon.DefaultOpsLimit))
	flagTxPoolLimit         string = libcommon.GetENVValue("COUNCIL_TXPOOL_LIMIT", strconv.Itoa(libcommon.DefaultTxPoolLimit))
	flagLogLevel            string = libcommon.GetENVValue("COUNCIL_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput           string = libcommon.GetENVValue("COUNCIL_LOG_OUTPUT", "")
	flagHTTPLogOutput       string = libcommon.GetENVValue("COUNCIL_HTTP_LOG_OUTPUT", "")

	bindURL       *url.URL
	storageConfig *storage.Config
	nodeConfig    libcommon.Config
	logLevel      logging.Lvl
	logHandler    logging.Handler
	log           logging.Logger = logging.New("module", "main")
)

func init() {
	nodeCmd = &cobra.Command{
		Use:   "node",
		Short: "Run council node",
		Run: func(c *cobra.Command, args []string) {
			if flagName, err := parseFlagsNode(); err != nil {
				common.PrintFlagsError(c, flagName, err)
			}
			setLogging()

			if err := runNode(); err != nil {
				log.Info("node stopped", "reason", err)
			}
		},
	}

	flagStorageConfigString = defaultStorage()

	nodeCmd.Flags().StringVar(&flagStorageConfigString, "storage", flagStorageConfigString, "storage uri")
	nodeCmd.Flags().StringVar(&flagBindURL, "bind", flagBindURL, "bind address of the api server ('http://0.0.0.0:12345')")
	nodeCmd.Flags().StringVar(&flagTLSCertFile, "tls-cert", flagTLSCertFile, "tls certificate file, used with 'https' bind")
	nodeCmd.Flags().StringVar(&flagTLSKeyFile, "tls-key", flagTLSKeyFile, "tls key file, used with 'https' bind")
	nodeCmd.Flags().StringVar(&flagGovernance, "governance", flagGovernance, "public address allowed to send privileged operations")
	nodeCmd.Flags().StringVar(&flagGenesis, "genesis", flagGenesis, "genesis file, applied when the storage is not initialized")
	nodeCmd.Flags().StringVar(&flagBlockTime, "block-time", flagBlockTime, "interval between blocks")
	nodeCmd.Flags().StringVar(&flagTxsLimit, "txs-limit", flagTxsLimit, "transactions limit in a block")
	nodeCmd.Flags().StringVar(&flagOpsLimit, "ops-limit", flagOpsLimit, "operations limit in a transaction")
	nodeCmd.Flags().StringVar(&flagTxPoolLimit, "txpool-limit", flagTxPoolLimit, "transaction pool limit")
	nodeCmd.Flags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	nodeCmd.Flags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	nodeCmd.Flags().StringVar(&flagHTTPLogOutput, "http-log-output", flagHTTPLogOutput, "set http access log output file")

	rootCmd.AddCommand(nodeCmd)
}

func parseBindURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme, '%s'", u.Scheme)
	}
	if len(u.Port()) < 1 {
		return nil, fmt.Errorf("port is missing")
	}

	return u, nil
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be greater than 0")
	}

	return n, nil
}

// parseFlagsNode checks the node flags. The returned string is the name of
// the flag which errored.
func parseFlagsNode() (string, error) {
	var err error

	if storageConfig, err = storage.NewConfigFromString(flagStorageConfigString); err != nil {
		return "--storage", err
	}

	if bindURL, err = parseBindURL(flagBindURL); err != nil {
		return "--bind", err
	}
	if bindURL.Scheme == "https" {
		if _, err = os.Stat(flagTLSCertFile); os.IsNotExist(err) {
			return "--tls-cert", err
		}
		if _, err = os.Stat(flagTLSKeyFile); os.IsNotExist(err) {
			return "--tls-key", err
		}
	}

	if len(flagGovernance) > 0 {
		if _, err = keypair.Parse(flagGovernance); err != nil {
			return "--governance", err
		}
	}

	if len(flagGenesis) > 0 {
		if _, err = os.Stat(flagGenesis); err != nil {
			return "--genesis", err
		}
	}

	nodeConfig = libcommon.NewConfig(flagGovernance)
	if nodeConfig.BlockTime, err = time.ParseDuration(flagBlockTime); err != nil {
		return "--block-time", err
	} else if nodeConfig.BlockTime <= 0 {
		return "--block-time", fmt.Errorf("must be greater than 0")
	}
	if nodeConfig.TxsLimit, err = parsePositiveInt(flagTxsLimit); err != nil {
		return "--txs-limit", err
	}
	if nodeConfig.OpsLimit, err = parsePositiveInt(flagOpsLimit); err != nil {
		return "--ops-limit", err
	}
	if nodeConfig.TxPoolLimit, err = parsePositiveInt(flagTxPoolLimit); err != nil {
		return "--txpool-limit", err
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		return "--log-level", err
	}

	var formatter logging.Format
	if isatty.IsTerminal(os.Stdout.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = libcommon.JsonFormatEx(false, true)
	}
	logHandler = logging.StreamHandler(os.Stdout, formatter)

	if len(flagLogOutput) > 0 {
		if logHandler, err = logging.FileHandler(flagLogOutput, logging.JsonFormat()); err != nil {
			return "--log-output", err
		}
	}

	return "", nil
}

func setLogging() {
	log.SetHandler(logging.LvlFilterHandler(logLevel, logHandler))
	council.SetLogging(logLevel, logHandler)
	transaction.SetLogging(logLevel, logHandler)
	runner.SetLogging(logLevel, logHandler)
	api.SetLogging(logLevel, logHandler)

	log.Info("Starting council node")

	// print flags
	parsedFlags := []interface{}{}
	parsedFlags = append(parsedFlags, "\n\tstorage", flagStorageConfigString)
	parsedFlags = append(parsedFlags, "\n\tbind", flagBindURL)
	parsedFlags = append(parsedFlags, "\n\tgovernance", flagGovernance)
	parsedFlags = append(parsedFlags, "\n\tgenesis", flagGenesis)
	parsedFlags = append(parsedFlags, "\n\tblock-time", nodeConfig.BlockTime)
	parsedFlags = append(parsedFlags, "\n\ttxs-limit", nodeConfig.TxsLimit)
	parsedFlags = append(parsedFlags, "\n\tops-limit", nodeConfig.OpsLimit)
	parsedFlags = append(parsedFlags, "\n\ttxpool-limit", nodeConfig.TxPoolLimit)
	parsedFlags = append(parsedFlags, "\n\tlog-level", flagLogLevel)
	parsedFlags = append(parsedFlags, "\n\tlog-output", flagLogOutput)
	parsedFlags = append(parsedFlags, "\n\thttp-log-output", flagHTTPLogOutput)

	log.Debug("parsed flags:", parsedFlags...)
}

// prepareStorage applies the genesis file to a storage that is not
// initialized yet.
func prepareStorage(st storage.Database, genesisPath string) error {
	height := block.NewHeight(0)
	initialized, err := council.New(st, ledger.NewAccounts(st, height), height).Initialized()
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}
	if len(genesisPath) < 1 {
		return errors.New("storage is not initialized; run `genesis` first or set `--genesis`")
	}

	config, err := LoadGenesisConfig(genesisPath)
	if err != nil {
		return err
	}
	if err = InitGenesis(st, config); err != nil {
		return err
	}
	log.Info("genesis applied", "genesis", genesisPath)

	return nil
}

func makeHandler(r *runner.Runner) (http.Handler, error) {
	router := api.NewNetworkHandlerAPI(r).Router()
	router.Handle(api.UrlPathPrefixMetric, promhttp.Handler())

	allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
	allowedMethods := ghandlers.AllowedMethods([]string{"GET", "POST"})
	allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control", "Accept"})

	var handler http.Handler = ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders)(router)
	if len(flagHTTPLogOutput) > 0 {
		out, err := os.OpenFile(flagHTTPLogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open http log output")
		}
		handler = ghandlers.CombinedLoggingHandler(out, handler)
	}

	return handler, nil
}

func runNode() error {
	st, err := storage.NewLevelDBBackend(storageConfig)
	if err != nil {
		return errors.Wrap(err, "failed to initialize storage")
	}
	defer st.Close()

	if err = prepareStorage(st, flagGenesis); err != nil {
		return err
	}

	metrics.InitPrometheusMetrics()
	metrics.SetVersion()

	r, err := runner.NewRunner(st, nodeConfig)
	if err != nil {
		return errors.Wrap(err, "failed to create runner")
	}

	handler, err := makeHandler(r)
	if err != nil {
		return err
	}
	server := &http.Server{Addr: bindURL.Host, Handler: handler}

	// Execution group.
	var g run.Group
	{
		g.Add(func() error {
			if err := r.Start(); err != nil {
				log.Crit("failed to process block", "error", err)
				return err
			}
			return nil
		}, func(error) {
			r.Stop()
		})
	}
	{
		g.Add(func() error {
			log.Info("api server started", "bind", bindURL.String())
			if bindURL.Scheme == "https" {
				return server.ListenAndServeTLS(flagTLSCertFile, flagTLSKeyFile)
			}
			return server.ListenAndServe()
		}, func(error) {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			server.Shutdown(ctx)
		})
	}
	{
		cancel := make(chan struct{})
		g.Add(func() error {
			return common.Interrupt(cancel)
		}, func(error) {
			close(cancel)
		})
	}

	return g.Run()
}
