// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package irc

import "fmt"

const (
	// SemVer is the semantic version of jIRCd.
	SemVer = "0.1.0"
)

var (
	// Ver is the full version string shown to users.
	Ver = fmt.Sprintf("jircd-%s", SemVer)
)
