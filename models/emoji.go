package models

import (
	"fmt"
	"regexp"
	"strings"
)

// EmojiKind distinguishes plain unicode emoji from guild custom emoji.
type EmojiKind string

const (
	EmojiStandard EmojiKind = "standard"
	EmojiCustom   EmojiKind = "custom"
)

// Emoji is a single tagged representation for both kinds of emoji.
// A standard emoji carries its code points in Name; a custom emoji carries
// the guild emoji's name and snowflake ID.
type Emoji struct {
	Kind EmojiKind
	Name string
	ID   string
}

var customEmojiPattern = regexp.MustCompile(`^<(a?):([[:word:]~]+):([0-9]+)>$`)

// ParseEmoji converts user input or a stored value into an Emoji.
// Custom emoji are recognized by the <:name:id> message syntax; anything
// else non-blank is treated as a standard emoji.
func ParseEmoji(raw string) (Emoji, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Emoji{}, fmt.Errorf("empty emoji")
	}
	if m := customEmojiPattern.FindStringSubmatch(trimmed); m != nil {
		return Emoji{Kind: EmojiCustom, Name: m[2], ID: m[3]}, nil
	}
	return Emoji{Kind: EmojiStandard, Name: trimmed}, nil
}

// IsZero reports whether no emoji is set.
func (e Emoji) IsZero() bool {
	return e.Kind == ""
}

// String renders the emoji in message syntax. This is also the stored form;
// ParseEmoji inverts it.
func (e Emoji) String() string {
	if e.Kind == EmojiCustom {
		return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
	}
	return e.Name
}

// APIName renders the emoji the way the reaction endpoints expect it.
func (e Emoji) APIName() string {
	if e.Kind == EmojiCustom {
		return e.Name + ":" + e.ID
	}
	return e.Name
}
