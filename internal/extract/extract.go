// Package extract maps raw archive records onto flat, fixed-schema row
// tables.  Every input record yields exactly one row; missing fields become
// type-appropriate defaults, never an error.
package extract

import (
	"strconv"
	"strings"

	"github.com/J-VITA/slack-channel-converter/internal/normalize"
	"github.com/J-VITA/slack-channel-converter/internal/sheet"
	"github.com/J-VITA/slack-channel-converter/internal/structures"
)

// Sheet names of the fixed single-archive sheets.
const (
	UsersSheet    = "Users"
	ChannelsSheet = "Channels"
	MessagesSheet = "Messages"
)

// UserHeader is the column schema of the Users sheet.
var UserHeader = []string{
	"user_id",
	"username",
	"real_name",
	"display_name",
	"email",
	"is_bot",
	"is_admin",
	"is_owner",
	"deleted",
	"created",
	"updated",
}

// Users flattens raw user records into the Users table.
func Users(users []structures.Record) sheet.Table {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		profile := u.Sub("profile")
		rows = append(rows, []string{
			u.String("id"),
			u.String("name"),
			u.String("real_name"),
			profile.String("display_name"),
			profile.String("email"),
			fb(u.Bool("is_bot")),
			fb(u.Bool("is_admin")),
			fb(u.Bool("is_owner")),
			fb(u.Bool("deleted")),
			u.String("created"),
			u.String("updated"),
		})
	}
	return sheet.Table{Name: UsersSheet, Header: UserHeader, Rows: rows}
}

// ChannelHeader is the column schema of the Channels sheet.
var ChannelHeader = []string{
	"channel_id",
	"channel_name",
	"channel_type",
	"topic",
	"purpose",
	"member_count",
	"created",
	"creator",
}

// Channels flattens raw channel records into the Channels table.
func Channels(chans []structures.Record) sheet.Table {
	rows := make([][]string, 0, len(chans))
	for _, ch := range chans {
		chType := "public"
		if ch.Bool("is_private") {
			chType = "private"
		}
		rows = append(rows, []string{
			ch.String("id"),
			ch.String("name"),
			chType,
			ch.Sub("topic").String("value"),
			ch.Sub("purpose").String("value"),
			strconv.Itoa(ch.Int("num_members")),
			ch.String("created"),
			ch.String("creator"),
		})
	}
	return sheet.Table{Name: ChannelsSheet, Header: ChannelHeader, Rows: rows}
}

// MessageHeader is the column schema of every message sheet.
var MessageHeader = []string{
	"source_file",
	"message_id",
	"timestamp",
	"datetime",
	"user_id",
	"username",
	"text",
	"type",
	"subtype",
	"thread_ts",
	"reply_count",
	"reply_users_count",
	"latest_reply",
	"reactions",
	"files",
	"attachments",
}

// TextColumn is the free-text column of message sheets that receives the
// wrap-text style.
const TextColumn = "text"

// attachment titles and texts are truncated to this many characters in the
// summary column.
const attachmentTitleLen = 50

// Messages flattens raw message records into a message table.  The user
// index resolves author IDs to display names (nil resolves everything to
// "Unknown"); source tags each row with the originating archive fragment
// (may be empty); n cleans the message body (nil means the default
// normalizer).
func Messages(msgs []structures.Record, idx structures.UserIndex, source string, n *normalize.Normalizer) sheet.Table {
	rows := make([][]string, 0, len(msgs))
	for _, m := range msgs {
		ts, datetime := messageTime(m)
		rows = append(rows, []string{
			source,
			m.StringOr("client_msg_id", m.String("ts")),
			ts,
			datetime,
			m.String("user"),
			idx.DisplayName(m.String("user")),
			n.Normalize(m.String("text")),
			m.StringOr("type", "message"),
			m.String("subtype"),
			m.String("thread_ts"),
			strconv.Itoa(m.Int("reply_count")),
			strconv.Itoa(m.Int("reply_users_count")),
			m.String("latest_reply"),
			reactionSummary(m),
			fileSummary(m),
			attachmentSummary(m),
		})
	}
	return sheet.Table{
		Name:       MessagesSheet,
		Header:     MessageHeader,
		Rows:       rows,
		WrapColumn: TextColumn,
	}
}

// messageTime derives the timestamp and datetime columns.  An absent or
// unparseable ts leaves both empty; the row is still emitted.
func messageTime(m structures.Record) (ts, datetime string) {
	ts = m.String("ts")
	if ts == "" {
		return "", ""
	}
	t, err := structures.ParseTimestamp(ts)
	if err != nil {
		return "", ""
	}
	return ts, structures.FormatDateTime(t)
}

func reactionSummary(m structures.Record) string {
	return summarize(m, "reactions", func(r structures.Record) string {
		return r.String("name") + "(" + strconv.Itoa(r.Int("count")) + ")"
	})
}

func fileSummary(m structures.Record) string {
	return summarize(m, "files", func(f structures.Record) string {
		return f.String("name") + " (" + f.String("filetype") + ")"
	})
}

func attachmentSummary(m structures.Record) string {
	return summarize(m, "attachments", func(a structures.Record) string {
		return truncate(a.StringOr("title", a.String("text")), attachmentTitleLen)
	})
}

// summarize joins the item-wise summaries of a nested collection with
// ", ".  Messages without the collection yield an empty string.
func summarize(m structures.Record, key string, itemFn func(structures.Record) string) string {
	items, ok := m.List(key)
	if !ok || len(items) == 0 {
		return ""
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = itemFn(it)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func fb(b bool) string { return strconv.FormatBool(b) }
