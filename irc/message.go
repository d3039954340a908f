// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package irc

import (
	"strings"
)

const (
	// MaxLength is the maximum length of an IRC message, not counting the
	// trailing CR/LF delimiter. (RFC 2813 Section 2.3)
	MaxLength = 510

	msgSeparator     = " "
	prefixIdentifier = ":"
)

// Message is the parsed form of a single IRC protocol line: an optional
// prefix identifying the origin, a command or three-digit numeric code,
// zero or more space-delimited parameters, and an optional trailing
// parameter that may itself contain spaces.
//
// A Message is built either by ParseFrom or field-by-field through the
// setters; it carries no identity beyond its field values and is not safe
// for concurrent mutation.
type Message struct {
	prefix        *string
	command       string
	parameters    []string
	lastParameter *string
}

// ParseFrom creates a Message from a raw IRC line (without the trailing
// CR/LF). It returns nil if the line is empty or contains only whitespace.
//
// Tokenization splits on single spaces without collapsing runs, so a
// malformed line with consecutive spaces yields empty parameters rather
// than an error; protocol-correctness enforcement belongs to the caller.
func ParseFrom(line string) *Message {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	msg := &Message{}
	parts := strings.Split(line, msgSeparator)
	if len(parts) == 1 {
		// single command
		msg.command = parts[0]
		return msg
	}

	partIndex := 0
	first := parts[partIndex]
	partIndex++
	if strings.HasPrefix(first, prefixIdentifier) {
		msg.SetPrefix(first[1:])
		// a line that ends at the prefix is malformed; leave the command
		// empty rather than fail
		if partIndex < len(parts) {
			msg.command = parts[partIndex]
			partIndex++
		}
	} else {
		msg.command = first
	}

	for ; partIndex < len(parts); partIndex++ {
		if strings.HasPrefix(parts[partIndex], prefixIdentifier) {
			// the first token marked with ':' opens the trailing parameter;
			// everything after it belongs to the trailing parameter verbatim,
			// further colons included
			trailing := append([]string{parts[partIndex][1:]}, parts[partIndex+1:]...)
			msg.SetLastParameter(strings.Join(trailing, msgSeparator))
			break
		}
		msg.AddParameter(parts[partIndex])
	}

	return msg
}

// String renders the Message as an IRC protocol line (without the trailing
// CR/LF). It is a pure function of the current field values; the trailing
// parameter is always emitted with its ':' marker, which is conservative
// but always valid on the wire.
func (msg *Message) String() string {
	var buf strings.Builder

	if msg.prefix != nil {
		buf.WriteString(prefixIdentifier)
		buf.WriteString(*msg.prefix)
		buf.WriteString(msgSeparator)
	}
	if msg.command != "" {
		buf.WriteString(msg.command)
		buf.WriteString(msgSeparator)
	}
	for _, parameter := range msg.parameters {
		buf.WriteString(parameter)
		buf.WriteString(msgSeparator)
	}

	// everything emitted so far carries a dangling separator
	line := strings.TrimSuffix(buf.String(), msgSeparator)

	if msg.lastParameter != nil {
		line += msgSeparator + prefixIdentifier + *msg.lastParameter
	}

	return line
}

// Equal reports whether two Messages hold the same field values. The same
// reference always compares equal; otherwise prefix, command, parameters
// and lastParameter must all be present on the receiver and match pairwise,
// so a Message with any absent field never equals a distinct Message
// (absent and empty are different things here).
func (msg *Message) Equal(other *Message) bool {
	if msg == other {
		return true
	}
	if other == nil {
		return false
	}
	if msg.prefix == nil || other.prefix == nil || *msg.prefix != *other.prefix {
		return false
	}
	if msg.command == "" || msg.command != other.command {
		return false
	}
	if msg.parameters == nil || len(msg.parameters) != len(other.parameters) {
		return false
	}
	for i, parameter := range msg.parameters {
		if parameter != other.parameters[i] {
			return false
		}
	}
	if msg.lastParameter == nil || other.lastParameter == nil || *msg.lastParameter != *other.lastParameter {
		return false
	}
	return true
}

// Type returns the MessageType matching this Message's command, or UNKNOWN
// if the command is unset or not part of the known command table.
func (msg *Message) Type() MessageType {
	return TypeFromCommand(msg.command)
}

// SetType sets the message type, overwriting the command field with the
// type's canonical command string.
func (msg *Message) SetType(msgType MessageType) {
	msg.command = msgType.Command()
}

// Prefix returns the origin prefix and whether one is set.
func (msg *Message) Prefix() (prefix string, ok bool) {
	if msg.prefix == nil {
		return
	}
	return *msg.prefix, true
}

func (msg *Message) SetPrefix(prefix string) {
	msg.prefix = &prefix
}

func (msg *Message) Command() string {
	return msg.command
}

func (msg *Message) SetCommand(command string) {
	msg.command = command
}

// Parameters returns the ordinary (non-trailing) parameters in order. The
// returned slice is the Message's own storage and should not be modified.
func (msg *Message) Parameters() []string {
	return msg.parameters
}

// AddParameter appends an ordinary parameter.
func (msg *Message) AddParameter(parameter string) {
	msg.parameters = append(msg.parameters, parameter)
}

// ParameterCount returns the number of ordinary parameters.
func (msg *Message) ParameterCount() int {
	return len(msg.parameters)
}

// LastParameter returns the trailing parameter and whether one is set; an
// empty trailing parameter is present, not absent.
func (msg *Message) LastParameter() (lastParameter string, ok bool) {
	if msg.lastParameter == nil {
		return
	}
	return *msg.lastParameter, true
}

func (msg *Message) SetLastParameter(lastParameter string) {
	msg.lastParameter = &lastParameter
}
