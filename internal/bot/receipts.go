package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleAccountReceipt(ctx context.Context, msg *tgbotapi.Message, lang model.Language, onlySuccessful bool) {
	receipt, err := b.svc.AccountReceipt(ctx, msg.From.ID, onlySuccessful)
	if err != nil {
		if errors.Is(err, service.ErrNoAccounts) {
			b.reply(msg.Chat.ID, text(lang, "no_receipt"))
			return
		}
		b.fail(msg, lang, err)
		return
	}
	b.replyMarkdown(msg.Chat.ID, formatReceipt(receipt))
}

func (b *Bot) handlePaymentReceipt(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	receipt, err := b.svc.PaymentReceipt(ctx, msg.From.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoAccounts) {
			b.reply(msg.Chat.ID, text(lang, "no_receipt"))
			return
		}
		b.fail(msg, lang, err)
		return
	}
	b.replyMarkdown(msg.Chat.ID, formatReceipt(receipt))
}

func (b *Bot) handleShareReceipt(msg *tgbotapi.Message, lang model.Language) {
	b.replyMarkdown(msg.Chat.ID,
		"📤 *Yadda Za Ka Raba Receipt:*\n\n"+
			"1️⃣ Yi amfani da /snapshot don ƙirƙirar receipt\n"+
			"2️⃣ Danna akan sakon da aka aiko\n"+
			"3️⃣ Zaɓi 'Forward' daga menu\n"+
			"4️⃣ Zaɓi contact ko group da kake so",
	)
}

func formatReceipt(r *model.Receipt) string {
	var sb strings.Builder
	sb.WriteString("🧾 *Transaction Receipt*\n\n")
	sb.WriteString(fmt.Sprintf("• ID: `%s`\n", r.TransactionID))
	sb.WriteString(fmt.Sprintf("• Type: %s\n", r.Type))
	sb.WriteString(fmt.Sprintf("• Status: *%s*\n", strings.ToUpper(r.Status)))
	sb.WriteString(fmt.Sprintf("• Amount: *₦%d*\n", r.Amount))
	sb.WriteString(fmt.Sprintf("• Accounts: %d\n", r.AccountCount))
	if r.PhoneNumber != "" {
		sb.WriteString(fmt.Sprintf("• Phone: `%s`\n", r.PhoneNumber))
	}
	if r.BankDetails != "" {
		sb.WriteString(fmt.Sprintf("• Bank: `%s`\n", r.BankDetails))
	}
	sb.WriteString(fmt.Sprintf("• Date: `%s`\n", r.Date.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("• Reference: `%s`\n", r.Reference))
	return sb.String()
}
