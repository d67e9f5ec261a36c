package services

import (
	"net/mail"
	"regexp"
)

var (
	mobileRe = regexp.MustCompile(`^1[3-9]\d{9}$`)
	qqRe     = regexp.MustCompile(`^[1-9][0-9]{4,10}$`)
	wechatRe = regexp.MustCompile(`^[a-zA-Z]([-_a-zA-Z0-9]{5,19})+$`)
)

// isEmailValid checks address syntax only, deliverability is not probed.
func isEmailValid(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
