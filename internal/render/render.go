// Package render formats feed output for human inspection. It is a
// stateless consumer of the feed engine's posts; nothing here touches
// the storage model.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"
)

const (
	blockWidth = 80
	textWidth  = 76
	textIndent = "    "
)

// FormatPost renders one post as a bordered text block: a retweet or
// original marker, the author's handle and id, the original author when
// the post is a retweet, the timestamp, the tweet id, and the word-wrapped
// text body.
func FormatPost(p feed.Post) string {
	separator := strings.Repeat("-", blockWidth)
	lines := []string{separator}

	if p.IsRetweet() {
		lines = append(lines,
			fmt.Sprintf("🔄 Retweeted by: @%s (ID: %d)", handle(p.AuthorUsername), p.AuthorID),
			fmt.Sprintf("  Original Author: @%s (ID: %d)", handle(p.RetweetOfUsername), *p.RetweetOfUserID))
	} else {
		lines = append(lines,
			fmt.Sprintf("👤 Tweet by: @%s (ID: %d)", handle(p.AuthorUsername), p.AuthorID))
	}

	lines = append(lines,
		fmt.Sprintf("  Date: %s", p.CreatedAt.UTC().Format(time.RFC3339)),
		fmt.Sprintf("  Tweet ID: %d", p.TweetID),
		"")
	lines = append(lines, wrap(p.FullText, textWidth, textIndent))
	lines = append(lines, separator)
	return strings.Join(lines, "\n")
}

// FormatFeed renders a sequence of posts, one block per post.
func FormatFeed(posts []feed.Post) string {
	blocks := make([]string, 0, len(posts))
	for _, p := range posts {
		blocks = append(blocks, FormatPost(p))
	}
	return strings.Join(blocks, "\n")
}

func handle(username *string) string {
	if username == nil || *username == "" {
		return "N/A"
	}
	return *username
}

// wrap greedily fills lines up to width runes of content, prefixing each
// line with indent. Words longer than the width get a line of their own.
func wrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wordLen := len([]rune(word))
		switch {
		case i == 0:
			b.WriteString(indent)
			b.WriteString(word)
			lineLen = wordLen
		case lineLen+1+wordLen <= width:
			b.WriteString(" ")
			b.WriteString(word)
			lineLen += 1 + wordLen
		default:
			b.WriteString("\n")
			b.WriteString(indent)
			b.WriteString(word)
			lineLen = wordLen
		}
	}
	return b.String()
}
