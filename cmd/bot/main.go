package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"skirmish/arena"
	"skirmish/bot/application"
	"skirmish/bot/domain"
	"skirmish/utils"
)

// startStagger はセッション生成の間隔。全ボット同時接続でサーバを叩かないための間
const startStagger = 750 * time.Millisecond

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "9090")
	botCountStr := utils.GetEnvDefault("BOT_COUNT", "3")
	presetName := utils.GetEnvDefault("PRESET", "normal")

	botCount, err := strconv.Atoi(botCountStr)
	if err != nil || botCount < 1 {
		slog.Error("invalid BOT_COUNT", "value", botCountStr)
		os.Exit(1)
	}

	preset, ok := domain.PresetByName(presetName)
	if !ok {
		slog.Error("unknown PRESET", "value", presetName, "available", strings.Join(domain.PresetNames(), ", "))
		os.Exit(1)
	}

	cfg := application.Config{
		Server:   application.ServerConfig{Host: addr, Port: port},
		Preset:   preset,
		BotCount: botCount,
	}

	slog.Info("starting bots", "count", botCount, "preset", preset.Name, "server", addr+":"+port)

	var wg sync.WaitGroup
	for i := range botCount {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runBot(ctx, id, cfg)
		}(i)

		// 起動をずらす
		select {
		case <-ctx.Done():
		case <-time.After(startStagger):
		}
	}

	wg.Wait()
	slog.Info("all bots stopped")
}

// runBot は1体分のセッションを回します。セッションが切れたら再接続します。
func runBot(ctx context.Context, id int, cfg application.Config) {
	for {
		if ctx.Err() != nil {
			return
		}

		session := application.NewBotSession(id, cfg, arena.Dial)
		err := session.Run(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("bot session ended, reconnecting", "bot", session.Identity(), "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}
