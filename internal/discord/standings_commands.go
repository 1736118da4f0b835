package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/splcricket/auction-bot/internal/models"
)

// handlePhase shows the current phase and minimum bid
func (hm *HandlerManager) handlePhase(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	snap, err := hm.snapshot(context.Background())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load auction data: "+err.Error())
		return
	}

	if snap.Phase.Complete() {
		s.ChannelMessageSend(m.ChannelID, "**PHASE: AUCTION COMPLETE**")
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
		"**PHASE: %s | Min Bid: ₹%s** (%d players in the pool)",
		snap.Phase.Label(), formatAmount(snap.Phase.MinBid), len(snap.Phase.Pool)))
}

// handleStandings shows each team's purse position
func (hm *HandlerManager) handleStandings(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	snap, err := hm.snapshot(context.Background())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load auction data: "+err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 **Standings** — " + snap.Phase.Label() + "\n```\n")
	sb.WriteString(fmt.Sprintf("%-6s %8s %10s %10s  %s\n", "Team", "Players", "Purse Left", "Max Bid", "Status"))
	for _, st := range snap.Standings {
		status := "Active"
		if st.Full {
			status = "FULL"
		}
		maxBid := st.MaxBid
		if maxBid < 0 {
			maxBid = 0
		}
		sb.WriteString(fmt.Sprintf("%-6s %8d %10s %10s  %s\n",
			st.Team, st.Count, formatAmount(st.PurseLeft), formatAmount(maxBid), status))
	}
	sb.WriteString("```")

	s.ChannelMessageSend(m.ChannelID, sb.String())
}

// handleSquad shows a team's bought players and prices
func (hm *HandlerManager) handleSquad(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!squad <team>`")
		return
	}

	team, ok := models.NormalizeTeam(strings.Join(args, " "))
	if !ok {
		s.ChannelMessageSend(m.ChannelID, "Unknown team. Teams: "+strings.Join(models.Teams, ", "))
		return
	}

	snap, err := hm.snapshot(context.Background())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load auction data: "+err.Error())
		return
	}

	squad := snap.Roster.Sold().FilterByTeam(team)
	if len(squad) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("**%s** has not bought anyone yet", team))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 **%s** (%d players)\n", team, len(squad)))
	for _, p := range squad {
		sb.WriteString(fmt.Sprintf("• %s (**%s**)\n", p.Name, formatAmount(p.SoldPrice)))
	}

	s.ChannelMessageSend(m.ChannelID, sb.String())
}

// handleUnsoldList shows unsold players, flagged re-offers first
func (hm *HandlerManager) handleUnsoldList(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	snap, err := hm.snapshot(context.Background())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load auction data: "+err.Error())
		return
	}

	unsold := snap.Roster.SortedUnsold()
	if len(unsold) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No unsold players")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🚫 **Unsold** (%d)\n", len(unsold)))
	for _, p := range unsold {
		icon := ""
		if p.UnsoldPriority == models.UnsoldPriorityReoffer {
			icon = "🔥 "
		}
		sb.WriteString(fmt.Sprintf("• %s%s\n", icon, p.Name))
	}

	s.ChannelMessageSend(m.ChannelID, sb.String())
}

// handlePlayer looks up a player by name
func (hm *HandlerManager) handlePlayer(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!player <player name>`")
		return
	}
	playerName := strings.Join(args, " ")

	snap, err := hm.snapshot(context.Background())
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load auction data: "+err.Error())
		return
	}

	matches := snap.Roster.SearchByName(playerName)
	if len(matches) == 0 {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No player found matching '%s'", playerName))
		return
	}
	if len(matches) > 1 {
		msg := fmt.Sprintf("Multiple players found matching '%s':\n", playerName)
		for i, p := range matches {
			if i >= 10 {
				msg += fmt.Sprintf("... and %d more\n", len(matches)-10)
				break
			}
			msg += fmt.Sprintf("• %s (%s)\n", p.Name, orDash(p.Role))
		}
		msg += "\nPlease be more specific."
		s.ChannelMessageSend(m.ChannelID, msg)
		return
	}

	p := matches[0]
	embed := &discordgo.MessageEmbed{
		Title: p.Name,
		Color: 0x3498db,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Role", Value: orDash(p.Role), Inline: true},
			{Name: "Batting", Value: orDash(p.BattingStyle), Inline: true},
		},
	}
	switch {
	case p.IsSold():
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Status", Value: "Sold", Inline: true},
			&discordgo.MessageEmbedField{Name: "Team", Value: p.TeamName, Inline: true},
			&discordgo.MessageEmbedField{Name: "Price", Value: formatAmount(p.SoldPrice), Inline: true},
		)
	case p.IsUnsold():
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Status", Value: "Unsold", Inline: true},
		)
	default:
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Status", Value: "Available", Inline: true},
			&discordgo.MessageEmbedField{Name: "Set", Value: fmt.Sprint(p.SetPriority), Inline: true},
		)
	}

	s.ChannelMessageSendEmbed(m.ChannelID, embed)
}
