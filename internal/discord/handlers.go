package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/splcricket/auction-bot/internal/auction"
	"github.com/splcricket/auction-bot/internal/cache"
	"github.com/splcricket/auction-bot/internal/config"
	"github.com/splcricket/auction-bot/internal/images"
	"github.com/splcricket/auction-bot/internal/models"
	"github.com/splcricket/auction-bot/pkg/logger"
)

type HandlerManager struct {
	session  *discordgo.Session
	config   *config.Config
	logger   *logger.Logger
	cache    *cache.Cache
	auction  *auction.Service
	images   *images.Fetcher
	commands map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	cfg *config.Config,
	log *logger.Logger,
	dataCache *cache.Cache,
	auctionService *auction.Service,
	imageFetcher *images.Fetcher,
) *HandlerManager {
	hm := &HandlerManager{
		session:  session,
		config:   cfg,
		logger:   log,
		cache:    dataCache,
		auction:  auctionService,
		images:   imageFetcher,
		commands: make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	// Viewer commands
	hm.commands["help"] = hm.handleHelp
	hm.commands["reload"] = hm.handleReload
	hm.commands["phase"] = hm.handlePhase
	hm.commands["standings"] = hm.handleStandings
	hm.commands["squad"] = hm.handleSquad
	hm.commands["unsold-list"] = hm.handleUnsoldList
	hm.commands["player"] = hm.handlePlayer

	// Auctioneer commands, role-checked in their handlers
	hm.commands["pick"] = hm.handlePick
	hm.commands["sold"] = hm.handleSold
	hm.commands["unsold"] = hm.handleUnsold
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !strings.HasPrefix(m.Content, hm.config.CommandPrefix) {
		return
	}

	content := strings.TrimPrefix(m.Content, hm.config.CommandPrefix)
	parts := strings.Fields(content)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

// isAdmin checks the author against the configured auctioneer list.
// Non-admins keep the read-only commands.
func (hm *HandlerManager) isAdmin(m *discordgo.MessageCreate) bool {
	return models.IsAdmin(hm.config.AdminUserIDs, m.Author.ID)
}

func (hm *HandlerManager) requireAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if hm.isAdmin(m) {
		return true
	}
	s.ChannelMessageSend(m.ChannelID, "Auctioneer only. You can still use `!standings`, `!squad`, and `!unsold-list`.")
	return false
}

// snapshot returns the current auction state, preferring the cached
// roster. Money paths (pick/sold/unsold) read fresh inside the service
// instead of going through here.
func (hm *HandlerManager) snapshot(ctx context.Context) (*auction.Snapshot, error) {
	if roster, found := hm.cache.GetRoster(); found {
		return hm.auction.Derive(roster), nil
	}

	snap, err := hm.auction.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	hm.cache.SetRoster(snap.Roster)
	return snap, nil
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	helpMessage := `**Auction Bot Commands:**
` + "```" + `
!help          - Show this help message
!phase         - Show the current auction phase and minimum bid
!standings     - Show purse left, squad size, and max bid per team
!squad <team>  - Show a team's squad and prices
!unsold-list   - Show unsold players, priority re-offers first
!player <name> - Look up a player
!reload        - Force reload data from the sheet

Auctioneer only:
!pick               - Draw a random player from the current pool
!sold <price> <team> - Record a sale for the player on the block
!unsold             - Send the player on the block to round 2
` + "```"

	s.ChannelMessageSend(m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleReload(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	hm.cache.Flush()
	if _, err := hm.snapshot(context.Background()); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to reload data: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, "Data reloaded successfully!")
}
