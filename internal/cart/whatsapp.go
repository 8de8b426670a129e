package cart

import (
	"fmt"
	"log"
	"net/url"
)

// WhatsApp builds the wa.me deep link that opens a conversation with
// the message pre-filled.
type WhatsApp struct{}

func (WhatsApp) Open(destination, message string) (string, error) {
	link := fmt.Sprintf("https://wa.me/%s?text=%s", destination, url.QueryEscape(message))
	log.Printf("Opening WhatsApp conversation with %s", destination)
	return link, nil
}
