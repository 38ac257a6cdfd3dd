package relay

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"fyi-bot/models"
)

const relayTimeLayout = "03:04PM on 2006 Jan 02"

var stripPayloadPattern = regexp.MustCompile(`(?is)^(?:.{0,1}fyi\b\s*)?(.*)$`)

// StripPayload removes the leading trigger syntax (an optional one-character
// prefix followed by the trigger word) from a message and returns the
// announcement payload. Returns "" when nothing remains.
func StripPayload(content string) string {
	m := stripPayloadPattern.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// BuildRelayText renders the canonical relay text for an FYI. It is a pure
// function of its inputs.
func BuildRelayText(creatorMention string, timestamp time.Time, loc *time.Location, payload string) string {
	return fmt.Sprintf("**FYI from %s at %s:**\n%s",
		creatorMention, timestamp.In(loc).Format(relayTimeLayout), payload)
}

// Reactor is one interested member together with the reactions they used.
type Reactor struct {
	UserID      string
	DisplayName string
	Mention     string
	Emoji       []string
}

// BuildInterestedBlock renders the audience list, sorted by display name
// case-insensitively. With no reactors yet it renders the seeded hint naming
// the RSVP emoji.
func BuildInterestedBlock(reactors []Reactor, rsvpEmoji models.Emoji) string {
	if len(reactors) == 0 {
		return fmt.Sprintf("**Interested:**\n(none so far — react with %s to be pinged about updates)", rsvpEmoji)
	}

	sorted := make([]Reactor, len(reactors))
	copy(sorted, reactors)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].DisplayName) < strings.ToLower(sorted[j].DisplayName)
	})

	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, "**Interested:**")
	for _, r := range sorted {
		lines = append(lines, fmt.Sprintf("%s (%s)", r.Mention, strings.Join(r.Emoji, ", ")))
	}
	return strings.Join(lines, "\n")
}

// ComposeMirrorText joins the relay text with the interested block.
func ComposeMirrorText(relayText, interestedBlock string) string {
	return relayText + "\n" + interestedBlock
}

// Quote insets text for inclusion in a ping.
func Quote(text string) string {
	return "> " + strings.ReplaceAll(text, "\n", "\n> ")
}

// BuildUpdatePing renders the single audience ping sent when an FYI is
// edited.
func BuildUpdatePing(audienceMentions []string, creatorMention, relayText string) string {
	return fmt.Sprintf("%s the FYI you were interested in has been updated by %s:\n%s",
		strings.Join(audienceMentions, " "), creatorMention, Quote(relayText))
}

// BuildCancelPing renders the single audience ping sent when an FYI is
// cancelled.
func BuildCancelPing(audienceMentions []string, lastText string) string {
	return fmt.Sprintf("%s the FYI you were interested in has been removed:\n%s",
		strings.Join(audienceMentions, " "), Quote(lastText))
}

// Strike marks mirror text as cancelled.
func Strike(text string) string {
	return "~~" + text + "~~"
}

func mention(userID string) string {
	return "<@" + userID + ">"
}
