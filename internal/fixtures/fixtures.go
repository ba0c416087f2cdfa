// Package fixtures contains test data and helpers shared by the package
// tests.
package fixtures

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rusq/slack"
)

// Load loads a json data into T, or panics.
func Load[T any](js string) T {
	var ret T
	if err := json.Unmarshal([]byte(js), &ret); err != nil {
		panic(err)
	}
	return ret
}

// LoadPtr loads a json data into *T, or panics.
func LoadPtr[T any](js string) *T {
	v := Load[T](js)
	return &v
}

// TestArchiveJSON is a complete single-file backup: users, channels (one
// with its own nested message list) and a top-level message list.
const TestArchiveJSON = `{
	"users": [
		{"id": "U1", "name": "alice", "real_name": "Alice A",
		 "profile": {"display_name": "ally", "email": "alice@example.com"}},
		{"id": "U2", "name": "bob", "is_bot": true}
	],
	"channels": [
		{"id": "C1", "name": "general", "is_private": false,
		 "topic": {"value": "chit chat"}, "num_members": 2, "creator": "U1",
		 "messages": [
			{"ts": "1700000100.000000", "user": "U2", "text": "in-channel"}
		 ]},
		{"id": "C2", "name": "this-channel-name-is-way-over-31-characters-long", "is_private": true,
		 "messages": []}
	],
	"messages": [
		{"ts": "1700000000", "user": "U1", "text": "hello <b>world</b> :smile:"},
		{"user": "U1", "text": "no timestamp here"}
	]
}`

// TestFragmentJSON is a bare message list, the per-day fragment shape of a
// channel export.
const TestFragmentJSON = `[
	{"ts": "1700000000.000000", "user": "U1", "text": "first"},
	{"ts": "1700086400.000000", "user": "U2", "text": "next day"}
]`

// TestNoMessagesJSON is an object without a message list.
const TestNoMessagesJSON = `{"users": [{"id": "U1"}]}`

// TestBrokenJSON is not valid JSON.
const TestBrokenJSON = `{"messages": [`

// RichMessageJSON is a message exercising every derived summary column.
const RichMessageJSON = `{
	"client_msg_id": "ID-1",
	"ts": "1700000200.000000",
	"user": "U1",
	"text": "see attached",
	"type": "message",
	"subtype": "thread_broadcast",
	"thread_ts": "1700000000.000100",
	"reply_count": 2,
	"reply_users_count": 1,
	"latest_reply": "1700000300.000000",
	"reactions": [
		{"name": "+1", "count": 2},
		{"name": "eyes", "count": 1}
	],
	"files": [
		{"name": "report.pdf", "filetype": "pdf"},
		{"name": "pic.png", "filetype": "png"}
	],
	"attachments": [
		{"title": "a title", "text": "ignored"},
		{"text": "` + longAttachmentText + `"}
	]
}`

const longAttachmentText = "xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx" // 60 chars

// GenFragment generates a marshalled archive fragment of n messages, one
// minute apart starting at the given time, authored round-robin by the
// given user IDs.  It builds the messages through the slack types so that
// the fixture shape stays true to the wire format.
func GenFragment(n int, start time.Time, users ...string) []byte {
	if len(users) == 0 {
		users = []string{"U1"}
	}
	msgs := make([]slack.Message, n)
	for i := range msgs {
		t := start.Add(time.Duration(i) * time.Minute)
		msgs[i] = slack.Message{Msg: slack.Msg{
			Timestamp: fmt.Sprintf("%d.%06d", t.Unix(), 0),
			User:      users[i%len(users)],
			Text:      fmt.Sprintf("message %d", i),
			Type:      "message",
		}}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		panic(err)
	}
	return data
}
