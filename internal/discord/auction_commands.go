package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/splcricket/auction-bot/internal/auction"
	"github.com/splcricket/auction-bot/internal/images"
	"github.com/splcricket/auction-bot/internal/models"
)

// handlePick draws a random player from the current eligible pool and
// puts them on the block
func (hm *HandlerManager) handlePick(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hm.requireAdmin(s, m) {
		return
	}

	ctx := context.Background()
	player, err := hm.auction.DrawNext(ctx)
	if err != nil {
		switch {
		case errors.Is(err, auction.ErrPlayerOnBlock):
			s.ChannelMessageSend(m.ChannelID, "A player is already on the block. Use `!sold` or `!unsold` first.")
		case errors.Is(err, auction.ErrAuctionComplete):
			s.ChannelMessageSend(m.ChannelID, "🎉 **AUCTION COMPLETE** — every player has been decided.")
		default:
			s.ChannelMessageSend(m.ChannelID, "Failed to draw a player: "+err.Error())
		}
		return
	}

	snap, err := hm.auction.Snapshot(ctx)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to read auction state: "+err.Error())
		return
	}
	hm.cache.SetRoster(snap.Roster)

	hm.sendPlayerCard(s, m.ChannelID, player, snap)
}

// handleSold records a sale for the player on the block
func (hm *HandlerManager) handleSold(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hm.requireAdmin(s, m) {
		return
	}

	if len(args) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!sold <price> <team>`")
		return
	}

	price, err := strconv.Atoi(strings.ReplaceAll(args[0], ",", ""))
	if err != nil || price < 0 {
		s.ChannelMessageSend(m.ChannelID, "Price must be a non-negative number")
		return
	}
	teamName := strings.Join(args[1:], " ")

	result, err := hm.auction.SubmitDecision(context.Background(), auction.Decision{
		Status: models.StatusSold,
		Price:  price,
		Team:   teamName,
	})
	if err != nil {
		hm.reportDecisionError(s, m.ChannelID, err)
		return
	}

	hm.cache.InvalidateRoster()
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
		"✅ **SOLD!** %s to **%s** for **%s**",
		result.Player.Name, result.Team, formatAmount(result.Price)))
}

// handleUnsold sends the player on the block to round 2
func (hm *HandlerManager) handleUnsold(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if !hm.requireAdmin(s, m) {
		return
	}

	result, err := hm.auction.SubmitDecision(context.Background(), auction.Decision{
		Status: models.StatusUnsold,
	})
	if err != nil {
		hm.reportDecisionError(s, m.ChannelID, err)
		return
	}

	hm.cache.InvalidateRoster()
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ **UNSOLD** — %s goes to round 2", result.Player.Name))
}

func (hm *HandlerManager) reportDecisionError(s *discordgo.Session, channelID string, err error) {
	switch {
	case errors.Is(err, auction.ErrNoPlayerOnBlock):
		s.ChannelMessageSend(channelID, "No player is on the block. Use `!pick` first.")
	case errors.Is(err, auction.ErrStalePlayer):
		s.ChannelMessageSend(channelID, "The player on the block is no longer in the roster. Session reset — `!pick` again.")
	case errors.Is(err, auction.ErrBidTooLow):
		s.ChannelMessageSend(channelID, "Bid too low for the current phase's minimum.")
	case errors.Is(err, auction.ErrBidExceedsMax):
		s.ChannelMessageSend(channelID, "That bid exceeds the team's max bid.")
	case errors.Is(err, auction.ErrUnknownTeam):
		s.ChannelMessageSend(channelID, "Unknown team. Teams: "+strings.Join(models.Teams, ", "))
	default:
		s.ChannelMessageSend(channelID, "Decision failed: "+err.Error())
	}
}

// sendPlayerCard posts the on-block player with their photo and the
// phase context the auctioneer needs to run the bidding
func (hm *HandlerManager) sendPlayerCard(s *discordgo.Session, channelID string, player *models.Player, snap *auction.Snapshot) {
	embed := &discordgo.MessageEmbed{
		Title: "🔨 " + player.Name,
		Color: 0x2ecc71,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Role", Value: orDash(player.Role), Inline: true},
			{Name: "Batting", Value: orDash(player.BattingStyle), Inline: true},
			{Name: "Min Bid", Value: formatAmount(snap.Phase.MinBid), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: snap.Phase.Label(),
		},
	}
	if player.IsUnsold() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "⚠️ Round 2", Value: "Previously unsold", Inline: true,
		})
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Set", Value: strconv.Itoa(player.SetPriority), Inline: true,
		})
	}

	msg := &discordgo.MessageSend{Embed: embed}
	if data, ok := hm.images.Fetch(player.ImageRef); ok {
		msg.Files = []*discordgo.File{{
			Name:   "player.jpg",
			Reader: bytes.NewReader(data),
		}}
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://player.jpg"}
	} else {
		embed.Image = &discordgo.MessageEmbedImage{URL: images.PlaceholderURL}
	}

	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		hm.logger.Error("Failed to send player card: ", err)
	}
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

func formatAmount(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
