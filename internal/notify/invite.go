package notify

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the locales invite emails can be rendered in.
// The first entry is the fallback for unsupported requests.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(Supported)

// Invite carries what an invitation email needs to say.
type Invite struct {
	To               string
	Destination      string
	StartsAt         time.Time
	EndsAt           time.Time
	ConfirmationLink string
}

// InviteRenderer turns an Invite into a localized Message.
// It is safe for concurrent use.
type InviteRenderer struct {
	tag     language.Tag
	printer *message.Printer
	loc     *time.Location
}

// NewInviteRenderer returns a renderer for the best supported match of locale
// (e.g. "pt-BR", "en"). Dates are rendered in loc; nil means UTC.
func NewInviteRenderer(locale string, loc *time.Location) *InviteRenderer {
	tag := Supported[0]
	if locale != "" {
		if requested, err := language.Parse(locale); err == nil {
			_, idx, _ := matcher.Match(requested)
			tag = Supported[idx]
		}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &InviteRenderer{tag: tag, printer: message.NewPrinter(tag), loc: loc}
}

// Locale returns the tag the renderer settled on.
func (r *InviteRenderer) Locale() language.Tag {
	return r.tag
}

// LongDate formats t's calendar date in the renderer's locale,
// e.g. "January 2, 2024" or "2 de janeiro de 2024".
func (r *InviteRenderer) LongDate(t time.Time) string {
	t = t.In(r.loc)
	month := r.printer.Sprintf(monthKeys[t.Month()-1])
	// Day and year go in as strings: the printer would otherwise apply digit
	// grouping and render the year as "2,024".
	return r.printer.Sprintf(keyLongDate, month, strconv.Itoa(t.Day()), strconv.Itoa(t.Year()))
}

// RenderInvite builds the invitation email for in.
func (r *InviteRenderer) RenderInvite(in Invite) (Message, error) {
	start := r.LongDate(in.StartsAt)
	end := r.LongDate(in.EndsAt)

	var body bytes.Buffer
	err := inviteTemplate.Execute(&body, inviteView{
		Intro:        r.printer.Sprintf(keyInviteIntro, in.Destination, start, end),
		Instructions: r.printer.Sprintf(keyInviteInstructions),
		Link:         template.URL(in.ConfirmationLink),
		LinkLabel:    r.printer.Sprintf(keyInviteLinkLabel),
		Disclaimer:   r.printer.Sprintf(keyInviteDisclaimer),
	})
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      in.To,
		Subject: r.printer.Sprintf(keyInviteSubject, in.Destination, start),
		HTML:    body.String(),
	}, nil
}

type inviteView struct {
	Intro        string
	Instructions string
	Link         template.URL
	LinkLabel    string
	Disclaimer   string
}

var inviteTemplate = template.Must(template.New("invite").Parse(
	`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>{{.Intro}}</p>
  <p>{{.Instructions}}</p>
  <p><a href="{{.Link}}">{{.LinkLabel}}</a></p>
  <p>{{.Disclaimer}}</p>
</div>`))
