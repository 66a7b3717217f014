package content

import (
	"net/url"
	"strings"
)

const whatsAppHost = "wa.me"

// WhatsAppLink builds a chat link that opens with message prefilled.
//
// The message is escaped like JavaScript's encodeURIComponent so the links
// match the ones already printed on marketing material byte for byte.
func WhatsAppLink(phone, message string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	return "https://" + whatsAppHost + "/" + phone + "?text=" + EscapeComponent(message)
}

// PrefilledMessage extracts the decoded message from a chat link.
func PrefilledMessage(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil || u.Host != whatsAppHost {
		return "", false
	}
	text := u.Query().Get("text")
	return text, text != ""
}

// EscapeComponent percent-encodes every byte outside the URI component
// unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
