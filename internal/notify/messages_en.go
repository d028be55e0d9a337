package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// %[1]s month name, %[2]s day, %[3]s year.
	_ = message.SetString(lang, keyLongDate, "%[1]s %[2]s, %[3]s")
	_ = message.SetString(lang, keyInviteSubject, "Confirm your attendance on the trip to %s on %s")
	_ = message.SetString(lang, keyInviteIntro, "You have been invited to join a trip to %s from %s to %s.")
	_ = message.SetString(lang, keyInviteInstructions, "To confirm your attendance, click the link below:")
	_ = message.SetString(lang, keyInviteLinkLabel, "Confirm trip")
	_ = message.SetString(lang, keyInviteDisclaimer, "If you don't know what this email is about, just ignore it.")

	for i, name := range []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	} {
		_ = message.SetString(lang, monthKeys[i], name)
	}
}
