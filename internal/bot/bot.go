package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/splcricket/auction-bot/internal/auction"
	"github.com/splcricket/auction-bot/internal/cache"
	"github.com/splcricket/auction-bot/internal/config"
	"github.com/splcricket/auction-bot/internal/discord"
	"github.com/splcricket/auction-bot/internal/images"
	"github.com/splcricket/auction-bot/internal/sheets"
	"github.com/splcricket/auction-bot/internal/storage"
	"github.com/splcricket/auction-bot/pkg/logger"
)

type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	logger    *logger.Logger
	dataCache *cache.Cache
	auction   *auction.Service
	handlers  *discord.HandlerManager
}

func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	sheetsClient, err := sheets.NewClient(ctx, cfg.SpreadsheetID, cfg.SheetName, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	auditLog, err := storage.NewAuditLog()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}

	auctionService, err := auction.NewService(auction.Defaults(), sheetsClient, auditLog, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auction service: %w", err)
	}

	dataCache := cache.New(cfg.CacheDuration)

	b := &Bot{
		session:   session,
		config:    cfg,
		logger:    log,
		dataCache: dataCache,
		auction:   auctionService,
	}

	b.handlers = discord.NewHandlerManager(session, cfg, log, dataCache, auctionService, images.NewFetcher(dataCache))

	return b, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.handlers.RegisterHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	// Prime the roster so the first command is fast and connectivity
	// problems show up at startup rather than mid-auction
	snap, err := b.auction.Snapshot(ctx)
	if err != nil {
		b.logger.Error("Failed to load initial roster from sheet: ", err)
	} else {
		b.dataCache.SetRoster(snap.Roster)
		b.logger.Info("Loaded ", len(snap.Roster), " players; phase: ", snap.Phase.Label())
	}

	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}
