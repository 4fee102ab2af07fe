package shibboleth

import (
	"errors"
	"fmt"
	"html"
	"regexp"
)

var ErrAssertionNotFound = errors.New("relay state and saml response not found")

// hiddenValuePattern matches the value of a self-closing input tag. The IdP's
// auto-submit page lists RelayState first and SAMLResponse second.
var hiddenValuePattern = regexp.MustCompile(`value="(.*)"/>`)

type Assertion struct {
	RelayState   string
	SAMLResponse string
	// Matched is how many values the page carried in total.
	Matched int
}

// ExtractAssertion takes the first two hidden values of the page in order.
// Anything after them (the noscript submit button) is ignored but counted.
func ExtractAssertion(page string) (Assertion, error) {
	matches := hiddenValuePattern.FindAllStringSubmatch(page, -1)
	if len(matches) < 2 {
		return Assertion{}, fmt.Errorf("%w: found %d of 2 values", ErrAssertionNotFound, len(matches))
	}

	return Assertion{
		RelayState:   html.UnescapeString(matches[0][1]),
		SAMLResponse: html.UnescapeString(matches[1][1]),
		Matched:      len(matches),
	}, nil
}
