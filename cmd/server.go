package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tokenledger/internal/config"
	"tokenledger/internal/core"
	"tokenledger/internal/http/handler"
	"tokenledger/internal/http/handler/middleware"
	"tokenledger/internal/http/payload"
	"tokenledger/internal/http/server"
	"tokenledger/internal/ledger"
	"tokenledger/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap/zapcore"
)

const serviceName = "tokenledger"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger(serviceName, zapcore.InfoLevel).
			Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, config.LogLevel)
	defer logger.Sync() //nolint:errcheck

	// ledger factory, called at start up and on every reset
	newLedger := func() (core.Ledger, error) {
		opts := []ledger.Option{ledger.WithOwner(common.HexToAddress(config.Owner))}
		if config.SeedDemoHolders {
			opts = append(opts, ledger.WithDemoHolders())
		}
		return ledger.New(config.TokenName, config.TokenSymbol, config.InitialSupply, opts...)
	}

	tokens, err := core.NewTokenService(logger, newLedger)
	if err != nil {
		logger.Errorw("failed to create token service", "error", err)
		return err
	}

	logger.Infow("token ledger ready",
		"name", config.TokenName,
		"symbol", config.TokenSymbol,
		"total_supply", tokens.Info().TotalSupply,
		"demo_holders", config.SeedDemoHolders)

	// handler
	tokenHdlr := handler.NewTokenHandler(
		logger,
		payload.Decoder{},
		tokens)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewRateLimitMiddleware(logger, config.RateLimit).RateLimit(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	tokenHdlr.Register(mux)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
