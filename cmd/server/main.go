package main

import (
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/kurobon/termgym/internal/config"
	"github.com/kurobon/termgym/internal/exec"
	"github.com/kurobon/termgym/internal/logging"
	"github.com/kurobon/termgym/internal/server"
	"github.com/kurobon/termgym/internal/shell"
	"github.com/kurobon/termgym/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	aliases, err := cfg.Aliases()
	if err != nil {
		logger.Fatal("alias table", zap.Error(err))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Fatal("home directory", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.SessionsDir(), 0o755); err != nil {
		logger.Fatal("data directory", zap.Error(err))
	}
	st := store.NewOS(cfg.SessionsDir())

	manager := shell.NewManager(home, cfg.HistoryLimit, st, shell.HeadLabel)
	engine := shell.NewEngine(&exec.ShellRunner{}, aliases, home, shell.HeadLabel, st, logger)
	srv := server.NewServer(manager, engine, home, logger)

	logger.Info("server listening",
		zap.String("addr", cfg.Addr),
		zap.String("home", home),
		zap.String("data", cfg.SessionsDir()))
	if err := http.ListenAndServe(cfg.Addr, srv); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
