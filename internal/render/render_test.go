package render

import (
	"strings"
	"testing"
	"time"

	"github.com/Einengutenmorgen/LSS-Twon-DB/internal/feed"
)

func strptr(s string) *string { return &s }
func int64ptr(v int64) *int64 { return &v }

func TestFormatPost_Original(t *testing.T) {
	p := feed.Post{
		TweetID:        100,
		AuthorID:       2,
		AuthorUsername: strptr("b"),
		FullText:       "hi there",
		CreatedAt:      time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC),
	}

	out := FormatPost(p)
	lines := strings.Split(out, "\n")

	sep := strings.Repeat("-", 80)
	if lines[0] != sep || lines[len(lines)-1] != sep {
		t.Fatalf("expected 80-column separators, got first %q last %q", lines[0], lines[len(lines)-1])
	}
	if lines[1] != "👤 Tweet by: @b (ID: 2)" {
		t.Fatalf("unexpected header line: %q", lines[1])
	}
	if lines[2] != "  Date: 2024-07-21T12:00:00Z" {
		t.Fatalf("unexpected date line: %q", lines[2])
	}
	if lines[3] != "  Tweet ID: 100" {
		t.Fatalf("unexpected id line: %q", lines[3])
	}
	if lines[4] != "" {
		t.Fatalf("expected blank line before text, got %q", lines[4])
	}
	if lines[5] != "    hi there" {
		t.Fatalf("unexpected text line: %q", lines[5])
	}
	if strings.Contains(out, "Retweeted by") {
		t.Fatalf("original post must not carry a retweet marker:\n%s", out)
	}
}

func TestFormatPost_Retweet(t *testing.T) {
	p := feed.Post{
		TweetID:           101,
		AuthorID:          3,
		AuthorUsername:    strptr("c"),
		FullText:          "passing it on",
		CreatedAt:         time.Date(2024, 7, 21, 12, 0, 1, 0, time.UTC),
		RetweetOfUserID:   int64ptr(9),
		RetweetOfUsername: strptr("orig"),
	}

	out := FormatPost(p)
	if !strings.Contains(out, "🔄 Retweeted by: @c (ID: 3)") {
		t.Fatalf("missing retweet marker:\n%s", out)
	}
	if !strings.Contains(out, "  Original Author: @orig (ID: 9)") {
		t.Fatalf("missing original author line:\n%s", out)
	}
}

func TestFormatPost_MissingUsernames(t *testing.T) {
	p := feed.Post{
		TweetID:         102,
		AuthorID:        4,
		FullText:        "anonymous",
		CreatedAt:       time.Date(2024, 7, 21, 12, 0, 2, 0, time.UTC),
		RetweetOfUserID: int64ptr(5),
	}

	out := FormatPost(p)
	if !strings.Contains(out, "🔄 Retweeted by: @N/A (ID: 4)") {
		t.Fatalf("nil author username should render as N/A:\n%s", out)
	}
	if !strings.Contains(out, "  Original Author: @N/A (ID: 5)") {
		t.Fatalf("nil retweet username should render as N/A:\n%s", out)
	}
}

func TestFormatPost_NonUTCTimestamp(t *testing.T) {
	cest := time.FixedZone("CEST", 2*3600)
	p := feed.Post{
		TweetID:        103,
		AuthorID:       2,
		AuthorUsername: strptr("b"),
		FullText:       "zoned",
		CreatedAt:      time.Date(2024, 7, 21, 14, 0, 0, 0, cest),
	}

	if !strings.Contains(FormatPost(p), "  Date: 2024-07-21T12:00:00Z") {
		t.Fatalf("timestamps should render in UTC")
	}
}

func TestFormatPost_WrapsLongText(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = "word"
	}
	p := feed.Post{
		TweetID:        104,
		AuthorID:       2,
		AuthorUsername: strptr("b"),
		FullText:       strings.Join(words, " "),
		CreatedAt:      time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC),
	}

	out := FormatPost(p)
	var textLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "    word") {
			textLines = append(textLines, line)
		}
	}
	if len(textLines) < 2 {
		t.Fatalf("expected wrapped text across multiple lines:\n%s", out)
	}
	for _, line := range textLines {
		if n := len([]rune(strings.TrimPrefix(line, "    "))); n > 76 {
			t.Fatalf("text line exceeds 76 runes (%d): %q", n, line)
		}
	}
	got := strings.Fields(strings.Join(textLines, " "))
	if len(got) != 40 {
		t.Fatalf("wrapping lost words: want 40, got %d", len(got))
	}
}

func TestFormatPost_EmptyText(t *testing.T) {
	p := feed.Post{
		TweetID:        105,
		AuthorID:       2,
		AuthorUsername: strptr("b"),
		CreatedAt:      time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC),
	}

	lines := strings.Split(FormatPost(p), "\n")
	if lines[5] != "    " {
		t.Fatalf("empty text should leave an indented blank body, got %q", lines[5])
	}
}

func TestFormatFeed(t *testing.T) {
	posts := []feed.Post{
		{TweetID: 1, AuthorID: 2, AuthorUsername: strptr("b"), FullText: "one",
			CreatedAt: time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)},
		{TweetID: 2, AuthorID: 3, AuthorUsername: strptr("c"), FullText: "two",
			CreatedAt: time.Date(2024, 7, 21, 12, 0, 1, 0, time.UTC)},
	}

	out := FormatFeed(posts)
	if got := strings.Count(out, strings.Repeat("-", 80)); got != 4 {
		t.Fatalf("expected 4 separator lines for 2 posts, got %d", got)
	}
	if !strings.Contains(out, "Tweet ID: 1") || !strings.Contains(out, "Tweet ID: 2") {
		t.Fatalf("feed missing posts:\n%s", out)
	}
	if FormatFeed(nil) != "" {
		t.Fatalf("empty feed should render as empty string")
	}
}
