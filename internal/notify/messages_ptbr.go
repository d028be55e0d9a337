package notify

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	_ = message.SetString(lang, keyLongDate, "%[2]s de %[1]s de %[3]s")
	_ = message.SetString(lang, keyInviteSubject, "Confirme sua presença na viagem para %s em %s")
	_ = message.SetString(lang, keyInviteIntro, "Você foi convidado(a) para participar de uma viagem para %s nas datas de %s até %s.")
	_ = message.SetString(lang, keyInviteInstructions, "Para confirmar sua presença na viagem, clique no link abaixo:")
	_ = message.SetString(lang, keyInviteLinkLabel, "Confirmar viagem")
	_ = message.SetString(lang, keyInviteDisclaimer, "Caso você não saiba do que se trata este e-mail, apenas ignore-o.")

	for i, name := range []string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	} {
		_ = message.SetString(lang, monthKeys[i], name)
	}
}
