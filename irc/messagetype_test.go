// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package irc

import "testing"

func TestTypeFromCommand(t *testing.T) {
	assertEqual(TypeFromCommand("NICK"), NICK, t)
	assertEqual(TypeFromCommand("PRIVMSG"), PRIVMSG, t)
	assertEqual(TypeFromCommand("001"), RPL_WELCOME, t)
	assertEqual(TypeFromCommand("461"), ERR_NEEDMOREPARAMS, t)
}

func TestTypeFromCommandUnknown(t *testing.T) {
	for _, command := range []string{"", "BOGUS", "nick", "Privmsg", "999", ":", "NICK "} {
		if msgType := TypeFromCommand(command); msgType != UNKNOWN {
			t.Errorf("expected UNKNOWN for %q, got %q", command, msgType)
		}
	}
}

func TestTypeCommandRoundTrip(t *testing.T) {
	for _, msgType := range KnownTypes() {
		if TypeFromCommand(msgType.Command()) != msgType {
			t.Errorf("type %q does not survive a command round-trip", msgType)
		}
	}
}

func TestKnownTypesIsACopy(t *testing.T) {
	types := KnownTypes()
	if len(types) == 0 {
		t.Fatal("expected a non-empty command table")
	}
	types[0] = MessageType("CLOBBERED")
	assertEqual(KnownTypes()[0], PASS, t)
}
