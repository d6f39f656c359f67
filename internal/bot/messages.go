package bot

import (
	"fmt"

	"tg_account_bot/internal/model"
)

// messages is the bilingual reply catalog. Hausa is the default; the
// /language command switches a user to English.
var messages = map[model.Language]map[string]string{
	model.LanguageHausa: {
		"welcome": "Barka da zuwa cibiyar karbar Telegram accounts! Don farawa, turo lambar wayar " +
			"account din da kake son sayarwa (misali: +2348167757987).\n\n" +
			"Tabbatar ka cire Two-Factor Authentication (2FA) kafin ka tura.",
		"intake_closed": "An rufe karbar Telegram accounts na yau. An rufe karbar accounts da karfe 10:00 na dare (WAT). " +
			"Za a sake buɗewa gobe karfe 8:00 na safe. Don Allah a gwada gobe.",
		"cancelled":     "An soke aikin cikin nasara.",
		"invalid_phone": "Lambar wayar ba daidai ba ce. Don Allah ka tura lambar waya mai kyau kamar: +2348167757987",
		"duplicate_phone": "⚠️ Kuskure! An riga an yi rajistar wannan lambar!\n%s\n" +
			"Ba za ka iya sake tura wannan lambar ba sai nan da mako ɗaya.",
		"code_sent": "🇳🇬 Ana sarrafawa... Don Allah a jira.\n" +
			"An tura lambar sirri (OTP) zuwa lambar: %s. Don Allah ka tura lambar sirrin a nan.",
		"code_request_failed": "Kuskure yayin neman OTP. Don Allah ka tabbatar lambar wayar daidai ce kuma ka sake gwadawa.",
		"invalid_code":        "Lambar sirri ba daidai ba ce. Don Allah ka tura lambar sirri mai lambobi 5 kawai.",
		"code_rejected":       "Lambar sirri ba daidai ba ce. Don Allah ka sake tura lambar sirrin.",
		"code_expired":        "Lambar sirri ta kare. Don Allah ka sake farawa da /start",
		"two_fa_required":     "⚠️ Lambar tana da 2FA/password. Ka cire 2FA kafin ka sake tura.",
		"login_failed":        "Kuskure yayin shiga account. Don Allah ka tabbatar lambar sirri daidai ce.",
		"no_phone_collected":  "Kuskure yayin karbar lambar waya. Don Allah ka sake farawa da /start",
		"submission_success": "An shiga account din ku cikin nasara ku cire shi daga na'urar ku. " +
			"Za a biya ku bisa ga adadin account din da kuka kawo. " +
			"Ana biyan kuɗi daga karfe 8:00 na dare (WAT) zuwa gaba. " +
			"Don Allah ka shirya tura bukatar biya.",
		"store_failed":  "Kuskure yayin ajiye account. Don Allah ka sake gwadawa.",
		"no_accounts":   "Ba ka da wata lamba da ka tura tukuna.",
		"accounts_head": "📋 Lambar da ka tura:\n\n",
		"withdraw_closed": "An rufe biyan kuɗi na yau. Za a fara biyan kuɗi gobe da karfe 8:00 na safe (WAT). " +
			"Don Allah a jira.",
		"withdraw_no_accounts": "Ba ka da wani account da aka karba cikin nasara. " +
			"Don Allah ka tura account din ka tukuna kafin ka nemi cire kuɗi.",
		"withdraw_prompt": "Danna hanyar cire kuɗinka.\n\n" +
			"Maza turo lambar asusun bankinka da sunan mai asusun. Misali:\n" +
			"9131085651 OPay Bashir Rabiu\n\n" +
			"Za a fara biyan kuɗi daga karfe 8:00 na dare (WAT). " +
			"Admin zai tura maka kuɗin ka akan lokaci.",
		"withdraw_short_details": "Bayanin banki ba cikakke ba ne. Don Allah ka tura lambar asusun, sunan banki, " +
			"da sunan mai asusun. Misali: 9131085651 OPay Bashir Rabiu",
		"withdraw_accepted": "An karbi bukatarku don cire kuɗi. Admin zai tura maku kuɗin ku akan lokaci.",
		"balance": "🆔 ID: %d\n✅ Tabbatattun: %d\n❌ Marasa tabbatacce: %d\n💰 Adadin kuɗi: ₦%d\n🗓 Ranar: %s",
		"language_prompt":  "Zaɓi yaren da kake so:",
		"language_updated": "An sabunta yare cikin nasara.",
		"no_receipt":       "Ba a sami bayanan receipt ba. Don Allah ka tura account ko ka yi withdrawal tukuna.",
		"start_hint":       "Don farawa, danna /start",
		"apology":          "An samu matsala. Don Allah ka sake gwadawa.",
	},
	model.LanguageEnglish: {
		"welcome": "Welcome to the account receiving bot!\n\nSend the phone number of the account " +
			"you want to sell (e.g. +2348167757987).\n\n" +
			"Make sure Two-Factor Authentication (2FA) is removed before you submit.",
		"intake_closed": "Account intake is closed for today. Intake closes at 10:00 PM (WAT) " +
			"and reopens tomorrow at 8:00 AM. Please try again tomorrow.",
		"cancelled":           "The operation has been canceled successfully.",
		"invalid_phone":       "That phone number is not valid. Please send a proper number like: +2348167757987",
		"duplicate_phone":     "⚠️ Error! This number is already registered!\n%s\nYou cannot submit it again for a week.",
		"code_sent":           "Processing... please wait.\nA login code (OTP) was sent to %s. Send the code here.",
		"code_request_failed": "Could not request an OTP. Please confirm the number is correct and try again.",
		"invalid_code":        "That code is not valid. Please send the 5-digit code only.",
		"code_rejected":       "That code was rejected. Please send the code again.",
		"code_expired":        "The code has expired. Please start over with /start",
		"two_fa_required":     "⚠️ This account has a 2FA password. Remove 2FA and submit again.",
		"login_failed":        "Could not log in to the account. Please confirm the code is correct.",
		"no_phone_collected":  "Something went wrong with your number. Please start over with /start",
		"submission_success": "Your account was received successfully; remove it from your device. " +
			"You will be paid per account submitted. Payments run from 8:00 PM (WAT). " +
			"Get ready to send a withdrawal request.",
		"store_failed":  "Failed to save the account. Please try again.",
		"no_accounts":   "You have not submitted any numbers yet.",
		"accounts_head": "📋 Numbers you submitted:\n\n",
		"withdraw_closed": "Payments are closed for today. They resume tomorrow at 8:00 AM (WAT). " +
			"Please wait.",
		"withdraw_no_accounts": "You have no successfully received accounts yet. " +
			"Submit an account before requesting a withdrawal.",
		"withdraw_prompt": "Choose your withdrawal method.\n\n" +
			"Send your bank account number and account name. Example:\n" +
			"9131085651 OPay Bashir Rabiu\n\n" +
			"Payments run from 8:00 PM (WAT). The admin will send your money on time.",
		"withdraw_short_details": "Those bank details look incomplete. Send the account number, bank name " +
			"and account name. Example: 9131085651 OPay Bashir Rabiu",
		"withdraw_accepted": "Your withdrawal request has been received. The admin will send your money on time.",
		"balance":           "🆔 ID: %d\n✅ Verified: %d\n❌ Unverified: %d\n💰 Balance: ₦%d\n🗓 Date: %s",
		"language_prompt":   "Please select your language:",
		"language_updated":  "Language updated successfully.",
		"no_receipt":        "No receipt data found. Submit an account or make a withdrawal first.",
		"start_hint":        "Send /start to begin.",
		"apology":           "Something went wrong. Please try again.",
	},
}

func text(lang model.Language, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return messages[model.LanguageHausa][key]
}

func textf(lang model.Language, key string, args ...interface{}) string {
	return fmt.Sprintf(text(lang, key), args...)
}
