package notify

// Catalog keys. Each locale file registers a translation for every key.
const (
	keyLongDate           = "date.long"
	keyInviteSubject      = "invite.subject"
	keyInviteIntro        = "invite.intro"
	keyInviteInstructions = "invite.instructions"
	keyInviteLinkLabel    = "invite.link_label"
	keyInviteDisclaimer   = "invite.disclaimer"
)

var monthKeys = [12]string{
	"month.january", "month.february", "month.march", "month.april",
	"month.may", "month.june", "month.july", "month.august",
	"month.september", "month.october", "month.november", "month.december",
}
