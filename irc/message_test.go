// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package irc

import (
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %v but got %v", expected, supplied)
	}
}

// messageFields is a comparable snapshot of a Message's accessor results.
type messageFields struct {
	Prefix        string
	HasPrefix     bool
	Command       string
	Parameters    []string
	LastParameter string
	HasLast       bool
}

func fieldsOf(msg *Message) (result messageFields) {
	result.Prefix, result.HasPrefix = msg.Prefix()
	result.Command = msg.Command()
	result.Parameters = msg.Parameters()
	result.LastParameter, result.HasLast = msg.LastParameter()
	return
}

func TestParseCanonical(t *testing.T) {
	line := ":irc.server NOTICE user :Hello there"
	msg := ParseFrom(line)
	if msg == nil {
		t.Fatalf("expected a message for %q", line)
	}

	expected := messageFields{
		Prefix:        "irc.server",
		HasPrefix:     true,
		Command:       "NOTICE",
		Parameters:    []string{"user"},
		LastParameter: "Hello there",
		HasLast:       true,
	}
	if diff := deep.Equal(fieldsOf(msg), expected); diff != nil {
		t.Error(diff)
	}

	assertEqual(msg.String(), line, t)
}

func TestParseNoPrefix(t *testing.T) {
	msg := ParseFrom("NICK guillermo")
	if msg == nil {
		t.Fatal("expected a message")
	}

	expected := messageFields{
		Command:    "NICK",
		Parameters: []string{"guillermo"},
	}
	if diff := deep.Equal(fieldsOf(msg), expected); diff != nil {
		t.Error(diff)
	}

	assertEqual(msg.String(), "NICK guillermo", t)
}

func TestParseSingleToken(t *testing.T) {
	msg := ParseFrom("PING")
	if msg == nil {
		t.Fatal("expected a message")
	}

	assertEqual(fieldsOf(msg), messageFields{Command: "PING"}, t)
	assertEqual(msg.ParameterCount(), 0, t)
	assertEqual(msg.String(), "PING", t)
}

func TestParseBlank(t *testing.T) {
	for _, line := range []string{"", " ", "   ", "\t"} {
		if msg := ParseFrom(line); msg != nil {
			t.Errorf("expected no message for %q, got %v", line, msg)
		}
	}
}

func TestParseTrailingWithEmbeddedColon(t *testing.T) {
	line := "PRIVMSG #chan :foo: bar baz"
	msg := ParseFrom(line)
	if msg == nil {
		t.Fatalf("expected a message for %q", line)
	}

	expected := messageFields{
		Command:       "PRIVMSG",
		Parameters:    []string{"#chan"},
		LastParameter: "foo: bar baz",
		HasLast:       true,
	}
	if diff := deep.Equal(fieldsOf(msg), expected); diff != nil {
		t.Error(diff)
	}

	assertEqual(msg.String(), line, t)
}

func TestParseTrailingTokenWithMarker(t *testing.T) {
	// only the first marker opens the trailing parameter; a later token
	// starting with ':' is kept verbatim inside it
	msg := ParseFrom("PRIVMSG #chan :foo :bar")
	if msg == nil {
		t.Fatal("expected a message")
	}
	last, ok := msg.LastParameter()
	assertEqual(ok, true, t)
	assertEqual(last, "foo :bar", t)
}

func TestParseEmptyTrailing(t *testing.T) {
	msg := ParseFrom("PRIVMSG #chan :")
	if msg == nil {
		t.Fatal("expected a message")
	}
	last, ok := msg.LastParameter()
	assertEqual(ok, true, t)
	assertEqual(last, "", t)
	assertEqual(msg.String(), "PRIVMSG #chan :", t)
}

func TestParseConsecutiveSpaces(t *testing.T) {
	// tokenization does not collapse repeated separators; the empty token
	// becomes an empty parameter
	msg := ParseFrom("NICK  guillermo")
	if msg == nil {
		t.Fatal("expected a message")
	}
	assertEqual(msg.Parameters(), []string{"", "guillermo"}, t)
	assertEqual(msg.String(), "NICK  guillermo", t)
}

func TestParsePrefixOnly(t *testing.T) {
	// a lone prefixed token is taken as the command, marker included
	msg := ParseFrom(":irc.server")
	if msg == nil {
		t.Fatal("expected a message")
	}
	assertEqual(fieldsOf(msg), messageFields{Command: ":irc.server"}, t)

	// with a trailing separator the token is read as a prefix and the
	// command stays empty; malformed input degrades, it does not fail
	msg = ParseFrom(":irc.server ")
	if msg == nil {
		t.Fatal("expected a message")
	}
	prefix, ok := msg.Prefix()
	assertEqual(ok, true, t)
	assertEqual(prefix, "irc.server", t)
	assertEqual(msg.Command(), "", t)
}

func TestSerializeBuilder(t *testing.T) {
	msg := &Message{}
	msg.SetPrefix("irc.server")
	msg.SetType(NOTICE)
	msg.AddParameter("user")
	msg.SetLastParameter("Hello there")
	assertEqual(msg.String(), ":irc.server NOTICE user :Hello there", t)

	msg = &Message{}
	msg.SetCommand("AWAY")
	msg.SetLastParameter("")
	assertEqual(msg.String(), "AWAY :", t)
}

func TestEqual(t *testing.T) {
	line := ":irc.server NOTICE user :Hello there"
	a := ParseFrom(line)
	b := ParseFrom(line)
	assertEqual(a.Equal(b), true, t)
	assertEqual(b.Equal(a), true, t)

	b.AddParameter("extra")
	assertEqual(a.Equal(b), false, t)

	if a.Equal(nil) {
		t.Error("a message must not equal nil")
	}
}

func TestEqualIdentity(t *testing.T) {
	// reference identity wins regardless of absent fields
	msg := ParseFrom("PING")
	assertEqual(msg.Equal(msg), true, t)
}

func TestEqualRequiresAllFields(t *testing.T) {
	// two distinct messages with matching absent fields are not equal
	a := ParseFrom("NICK guillermo")
	b := ParseFrom("NICK guillermo")
	assertEqual(a.Equal(b), false, t)
}

func TestEqualAbsentVsEmpty(t *testing.T) {
	a := ParseFrom(":irc.server NOTICE user")
	b := ParseFrom(":irc.server NOTICE user")
	b.SetLastParameter("")
	assertEqual(a.Equal(b), false, t)
	assertEqual(b.Equal(a), false, t)
}

func TestTypeBridge(t *testing.T) {
	msg := ParseFrom("NICK guillermo")
	assertEqual(msg.Type(), NICK, t)

	msg.SetType(QUIT)
	assertEqual(msg.Command(), "QUIT", t)
	assertEqual(msg.Type(), QUIT, t)

	msg = ParseFrom("BOGUS one two")
	assertEqual(msg.Type(), UNKNOWN, t)
}
