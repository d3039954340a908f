// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package irc

// MessageType classifies a command token into the closed table of known IRC
// commands and numeric reply codes. The underlying value is the canonical
// command string as it appears on the wire.
type MessageType string

// UNKNOWN is the fallback for any command token not in the known table.
const UNKNOWN MessageType = ""

const (
	// # commands (RFC 2812 Section 3)
	PASS     MessageType = "PASS"
	NICK     MessageType = "NICK"
	USER     MessageType = "USER"
	OPER     MessageType = "OPER"
	MODE     MessageType = "MODE"
	SERVICE  MessageType = "SERVICE"
	QUIT     MessageType = "QUIT"
	SQUIT    MessageType = "SQUIT"
	JOIN     MessageType = "JOIN"
	PART     MessageType = "PART"
	TOPIC    MessageType = "TOPIC"
	NAMES    MessageType = "NAMES"
	LIST     MessageType = "LIST"
	INVITE   MessageType = "INVITE"
	KICK     MessageType = "KICK"
	PRIVMSG  MessageType = "PRIVMSG"
	NOTICE   MessageType = "NOTICE"
	MOTD     MessageType = "MOTD"
	LUSERS   MessageType = "LUSERS"
	VERSION  MessageType = "VERSION"
	STATS    MessageType = "STATS"
	LINKS    MessageType = "LINKS"
	TIME     MessageType = "TIME"
	CONNECT  MessageType = "CONNECT"
	TRACE    MessageType = "TRACE"
	ADMIN    MessageType = "ADMIN"
	INFO     MessageType = "INFO"
	SERVLIST MessageType = "SERVLIST"
	SQUERY   MessageType = "SQUERY"
	WHO      MessageType = "WHO"
	WHOIS    MessageType = "WHOIS"
	WHOWAS   MessageType = "WHOWAS"
	KILL     MessageType = "KILL"
	PING     MessageType = "PING"
	PONG     MessageType = "PONG"
	ERROR    MessageType = "ERROR"
	AWAY     MessageType = "AWAY"
	REHASH   MessageType = "REHASH"
	DIE      MessageType = "DIE"
	RESTART  MessageType = "RESTART"
	SUMMON   MessageType = "SUMMON"
	USERS    MessageType = "USERS"
	WALLOPS  MessageType = "WALLOPS"
	USERHOST MessageType = "USERHOST"
	ISON     MessageType = "ISON"

	// # numeric codes
	// ## reply codes
	RPL_WELCOME       MessageType = "001"
	RPL_YOURHOST      MessageType = "002"
	RPL_CREATED       MessageType = "003"
	RPL_MYINFO        MessageType = "004"
	RPL_BOUNCE        MessageType = "005"
	RPL_UMODEIS       MessageType = "221"
	RPL_LUSERCLIENT   MessageType = "251"
	RPL_LUSEROP       MessageType = "252"
	RPL_LUSERUNKNOWN  MessageType = "253"
	RPL_LUSERCHANNELS MessageType = "254"
	RPL_LUSERME       MessageType = "255"
	RPL_AWAY          MessageType = "301"
	RPL_UNAWAY        MessageType = "305"
	RPL_NOWAWAY       MessageType = "306"
	RPL_WHOISUSER     MessageType = "311"
	RPL_WHOISSERVER   MessageType = "312"
	RPL_WHOISOPERATOR MessageType = "313"
	RPL_ENDOFWHO      MessageType = "315"
	RPL_WHOISIDLE     MessageType = "317"
	RPL_ENDOFWHOIS    MessageType = "318"
	RPL_WHOISCHANNELS MessageType = "319"
	RPL_LISTSTART     MessageType = "321"
	RPL_LIST          MessageType = "322"
	RPL_LISTEND       MessageType = "323"
	RPL_CHANNELMODEIS MessageType = "324"
	RPL_NOTOPIC       MessageType = "331"
	RPL_TOPIC         MessageType = "332"
	RPL_INVITING      MessageType = "341"
	RPL_WHOREPLY      MessageType = "352"
	RPL_NAMREPLY      MessageType = "353"
	RPL_ENDOFNAMES    MessageType = "366"
	RPL_INFO          MessageType = "371"
	RPL_MOTD          MessageType = "372"
	RPL_MOTDSTART     MessageType = "375"
	RPL_ENDOFMOTD     MessageType = "376"
	RPL_YOUREOPER     MessageType = "381"
	RPL_TIME          MessageType = "391"
	// ## error codes
	ERR_NOSUCHNICK       MessageType = "401"
	ERR_NOSUCHSERVER     MessageType = "402"
	ERR_NOSUCHCHANNEL    MessageType = "403"
	ERR_CANNOTSENDTOCHAN MessageType = "404"
	ERR_TOOMANYCHANNELS  MessageType = "405"
	ERR_NOORIGIN         MessageType = "409"
	ERR_NORECIPIENT      MessageType = "411"
	ERR_NOTEXTTOSEND     MessageType = "412"
	ERR_UNKNOWNCOMMAND   MessageType = "421"
	ERR_NOMOTD           MessageType = "422"
	ERR_NONICKNAMEGIVEN  MessageType = "431"
	ERR_ERRONEUSNICKNAME MessageType = "432"
	ERR_NICKNAMEINUSE    MessageType = "433"
	ERR_USERNOTINCHANNEL MessageType = "441"
	ERR_NOTONCHANNEL     MessageType = "442"
	ERR_USERONCHANNEL    MessageType = "443"
	ERR_NOTREGISTERED    MessageType = "451"
	ERR_NEEDMOREPARAMS   MessageType = "461"
	ERR_ALREADYREGISTRED MessageType = "462"
	ERR_PASSWDMISMATCH   MessageType = "464"
	ERR_CHANNELISFULL    MessageType = "471"
	ERR_UNKNOWNMODE      MessageType = "472"
	ERR_INVITEONLYCHAN   MessageType = "473"
	ERR_BANNEDFROMCHAN   MessageType = "474"
	ERR_BADCHANNELKEY    MessageType = "475"
	ERR_NOPRIVILEGES     MessageType = "481"
	ERR_CHANOPRIVSNEEDED MessageType = "482"
	ERR_USERSDONTMATCH   MessageType = "502"
)

// knownTypes lists the closed table in wire-canonical order; the lookup map
// is built from it once at init and never mutated, so unsynchronized
// concurrent reads are safe.
var knownTypes = []MessageType{
	PASS, NICK, USER, OPER, MODE, SERVICE, QUIT, SQUIT,
	JOIN, PART, TOPIC, NAMES, LIST, INVITE, KICK,
	PRIVMSG, NOTICE,
	MOTD, LUSERS, VERSION, STATS, LINKS, TIME, CONNECT, TRACE, ADMIN, INFO,
	SERVLIST, SQUERY,
	WHO, WHOIS, WHOWAS,
	KILL, PING, PONG, ERROR,
	AWAY, REHASH, DIE, RESTART, SUMMON, USERS, WALLOPS, USERHOST, ISON,

	RPL_WELCOME, RPL_YOURHOST, RPL_CREATED, RPL_MYINFO, RPL_BOUNCE,
	RPL_UMODEIS,
	RPL_LUSERCLIENT, RPL_LUSEROP, RPL_LUSERUNKNOWN, RPL_LUSERCHANNELS,
	RPL_LUSERME,
	RPL_AWAY, RPL_UNAWAY, RPL_NOWAWAY,
	RPL_WHOISUSER, RPL_WHOISSERVER, RPL_WHOISOPERATOR, RPL_ENDOFWHO,
	RPL_WHOISIDLE, RPL_ENDOFWHOIS, RPL_WHOISCHANNELS,
	RPL_LISTSTART, RPL_LIST, RPL_LISTEND,
	RPL_CHANNELMODEIS, RPL_NOTOPIC, RPL_TOPIC, RPL_INVITING,
	RPL_WHOREPLY, RPL_NAMREPLY, RPL_ENDOFNAMES,
	RPL_INFO, RPL_MOTD, RPL_MOTDSTART, RPL_ENDOFMOTD,
	RPL_YOUREOPER, RPL_TIME,

	ERR_NOSUCHNICK, ERR_NOSUCHSERVER, ERR_NOSUCHCHANNEL,
	ERR_CANNOTSENDTOCHAN, ERR_TOOMANYCHANNELS, ERR_NOORIGIN,
	ERR_NORECIPIENT, ERR_NOTEXTTOSEND, ERR_UNKNOWNCOMMAND, ERR_NOMOTD,
	ERR_NONICKNAMEGIVEN, ERR_ERRONEUSNICKNAME, ERR_NICKNAMEINUSE,
	ERR_USERNOTINCHANNEL, ERR_NOTONCHANNEL, ERR_USERONCHANNEL,
	ERR_NOTREGISTERED, ERR_NEEDMOREPARAMS, ERR_ALREADYREGISTRED,
	ERR_PASSWDMISMATCH,
	ERR_CHANNELISFULL, ERR_UNKNOWNMODE, ERR_INVITEONLYCHAN,
	ERR_BANNEDFROMCHAN, ERR_BADCHANNELKEY,
	ERR_NOPRIVILEGES, ERR_CHANOPRIVSNEEDED, ERR_USERSDONTMATCH,
}

var messageTypes map[string]MessageType

func init() {
	messageTypes = make(map[string]MessageType, len(knownTypes))
	for _, msgType := range knownTypes {
		messageTypes[string(msgType)] = msgType
	}
}

// TypeFromCommand returns the MessageType for a command token, matched
// exactly as received (no case-folding), or UNKNOWN for any token not in
// the table, the empty string included. It never fails.
func TypeFromCommand(command string) MessageType {
	if msgType, ok := messageTypes[command]; ok {
		return msgType
	}
	return UNKNOWN
}

// Command returns the canonical command string for this type; UNKNOWN has
// no canonical command and returns the empty string.
func (msgType MessageType) Command() string {
	return string(msgType)
}

// KnownTypes returns the closed command table in wire-canonical order. The
// returned slice is a copy and safe to modify.
func KnownTypes() []MessageType {
	result := make([]MessageType, len(knownTypes))
	copy(result, knownTypes)
	return result
}
