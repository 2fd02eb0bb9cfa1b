// Package mail provides the inbound message model and .eml file loading.
// Mail-provider connectivity lives outside this program; messages arrive as
// files exported from the account.
package mail

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	netmail "net/mail"
	"os"
	"strings"
)

// ErrNoBody is returned when a message carries neither an HTML nor a
// plain-text part.
var ErrNoBody = errors.New("mail: html and plain-text bodies cannot both be empty")

// Message is one inbound mail, reduced to the parts the pipeline needs.
type Message struct {
	Sender    string
	To        string
	Subject   string
	Date      string
	HTML      string
	PlainText string
	ID        string
}

// New validates and builds a message. At least one of html and plainText
// must be non-empty.
func New(sender, to, subject, date, html, plainText, id string) (*Message, error) {
	if html == "" && plainText == "" {
		return nil, ErrNoBody
	}
	return &Message{
		Sender:    sender,
		To:        to,
		Subject:   subject,
		Date:      date,
		HTML:      html,
		PlainText: plainText,
		ID:        id,
	}, nil
}

// Body returns the plain-text body, converting from HTML when the message
// has no text/plain part.
func (m *Message) Body() string {
	if m.PlainText != "" {
		return m.PlainText
	}
	text, err := HTMLToText(m.HTML)
	if err != nil {
		return m.HTML
	}
	return text
}

// ReadFile parses an RFC 5322 message from an .eml file. Multipart bodies
// are walked for the text/plain and text/html alternatives; base64 and
// quoted-printable transfer encodings are decoded.
func ReadFile(path string) (*Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := netmail.ReadMessage(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	header := parsed.Header
	plain, html, err := readBody(parsed.Body, header.Get("Content-Type"), header.Get("Content-Transfer-Encoding"))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", path, err)
	}

	return New(
		addressOf(header.Get("From")),
		addressOf(header.Get("To")),
		decodeHeader(header.Get("Subject")),
		header.Get("Date"),
		html,
		plain,
		header.Get("Message-Id"),
	)
}

func addressOf(field string) string {
	addr, err := netmail.ParseAddress(field)
	if err != nil {
		return field
	}
	return addr.Address
}

func decodeHeader(value string) string {
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

func readBody(r io.Reader, contentType, transferEncoding string) (plain, html string, err error) {
	mediaType := "text/plain"
	var params map[string]string
	if contentType != "" {
		mediaType, params, err = mime.ParseMediaType(contentType)
		if err != nil {
			return "", "", err
		}
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return "", "", errors.New("multipart message without boundary")
		}
		return readMultipart(r, boundary)
	}

	data, err := io.ReadAll(decodeTransfer(r, transferEncoding))
	if err != nil {
		return "", "", err
	}
	switch mediaType {
	case "text/html":
		return "", string(data), nil
	default:
		return string(data), "", nil
	}
}

func readMultipart(r io.Reader, boundary string) (plain, html string, err error) {
	mr := multipart.NewReader(r, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", "", err
		}
		partType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(partType, "multipart/"):
			p, h, err := readMultipart(part, params["boundary"])
			if err != nil {
				return "", "", err
			}
			if plain == "" {
				plain = p
			}
			if html == "" {
				html = h
			}
		case partType == "text/plain" && plain == "":
			data, err := io.ReadAll(decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding")))
			if err != nil {
				return "", "", err
			}
			plain = string(data)
		case partType == "text/html" && html == "":
			data, err := io.ReadAll(decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding")))
			if err != nil {
				return "", "", err
			}
			html = string(data)
		}
	}
	return plain, html, nil
}

func decodeTransfer(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}
