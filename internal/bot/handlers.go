package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service"
	"tg_account_bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	languageButtonEnglish = "🇬🇧 English"
	languageButtonHausa   = "🇳🇬 Hausa"
)

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	err := b.svc.SubmissionService.Begin(ctx, msg.From.ID)
	if err != nil {
		if errors.Is(err, service.ErrIntakeClosed) {
			b.reply(msg.Chat.ID, text(lang, "intake_closed"))
			return
		}
		b.fail(msg, lang, err)
		return
	}
	b.reply(msg.Chat.ID, text(lang, "welcome"))
}

func (b *Bot) handleCancel(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	if err := b.svc.Cancel(ctx, msg.From.ID); err != nil {
		b.fail(msg, lang, err)
		return
	}
	b.reply(msg.Chat.ID, text(lang, "cancelled"))
}

func (b *Bot) handlePhone(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	phone, err := b.svc.SubmitPhone(ctx, msg.From.ID, strings.TrimSpace(msg.Text))
	switch {
	case err == nil:
		b.reply(msg.Chat.ID, textf(lang, "code_sent", phone))
	case errors.Is(err, service.ErrInvalidPhone):
		b.reply(msg.Chat.ID, text(lang, "invalid_phone"))
	case errors.Is(err, service.ErrDuplicatePhone):
		b.reply(msg.Chat.ID, textf(lang, "duplicate_phone", phone))
	case errors.Is(err, service.ErrCodeRequestFailed):
		b.reply(msg.Chat.ID, text(lang, "code_request_failed"))
	default:
		b.fail(msg, lang, err)
	}
}

func (b *Bot) handleCode(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	err := b.svc.SubmitCode(ctx, msg.From.ID, msg.From.UserName, strings.TrimSpace(msg.Text))
	switch {
	case err == nil:
		b.reply(msg.Chat.ID, text(lang, "submission_success"))
	case errors.Is(err, service.ErrInvalidCodeFormat):
		b.reply(msg.Chat.ID, text(lang, "invalid_code"))
	case errors.Is(err, service.ErrCodeRejected):
		b.reply(msg.Chat.ID, text(lang, "code_rejected"))
	case errors.Is(err, service.ErrCodeExpired):
		b.reply(msg.Chat.ID, text(lang, "code_expired"))
	case errors.Is(err, service.ErrPasswordProtected):
		b.reply(msg.Chat.ID, text(lang, "two_fa_required"))
	case errors.Is(err, service.ErrDuplicatePhone):
		b.reply(msg.Chat.ID, text(lang, "store_failed"))
	case errors.Is(err, service.ErrNoPhoneCollected):
		b.reply(msg.Chat.ID, text(lang, "no_phone_collected"))
	case errors.Is(err, service.ErrLoginFailed):
		b.reply(msg.Chat.ID, text(lang, "login_failed"))
	default:
		b.fail(msg, lang, err)
	}
}

func (b *Bot) handleMyAccounts(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	accounts, err := b.svc.ListAccounts(ctx, msg.From.ID)
	if err != nil {
		b.fail(msg, lang, err)
		return
	}
	if len(accounts) == 0 {
		b.reply(msg.Chat.ID, text(lang, "no_accounts"))
		return
	}

	var sb strings.Builder
	sb.WriteString(text(lang, "accounts_head"))
	for _, a := range accounts {
		sb.WriteString(fmt.Sprintf("📞 `%s` — `%s`\n", a.PhoneNumber, a.Status))
	}
	b.replyMarkdown(msg.Chat.ID, sb.String())
}

func (b *Bot) handleWithdraw(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	_, err := b.svc.WithdrawalService.Begin(ctx, msg.From.ID)
	switch {
	case err == nil:
		b.reply(msg.Chat.ID, text(lang, "withdraw_prompt"))
	case errors.Is(err, service.ErrIntakeClosed):
		b.reply(msg.Chat.ID, text(lang, "withdraw_closed"))
	case errors.Is(err, service.ErrNoAccounts):
		b.reply(msg.Chat.ID, text(lang, "withdraw_no_accounts"))
	default:
		b.fail(msg, lang, err)
	}
}

func (b *Bot) handleBankDetails(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	req, phones, err := b.svc.SubmitBankDetails(ctx, msg.From.ID, msg.From.UserName, msg.Text)
	if err != nil {
		if errors.Is(err, service.ErrBankDetailsShort) {
			b.reply(msg.Chat.ID, text(lang, "withdraw_short_details"))
			return
		}
		b.fail(msg, lang, err)
		return
	}

	b.reply(msg.Chat.ID, text(lang, "withdraw_accepted"))
	b.notifyAdminWithdrawal(req, phones)
}

// notifyAdminWithdrawal tells the admin about a new payout ask along
// with the exact /mark_paid command to settle it.
func (b *Bot) notifyAdminWithdrawal(req *model.WithdrawalRequest, phones []string) {
	notice := fmt.Sprintf(
		"BUKATAR BIYA!\n\n"+
			"User ID: %d (Username: @%s)\n"+
			"Bukatar biya don accounts guda: %d\n"+
			"Lambobin Accounts da aka karba daga wannan user: %s\n"+
			"Bayanan Banki: %s\n\n"+
			"Danna /mark_paid %d %d don tabbatar da biyan.",
		req.UserID, req.Username, req.AccountCount,
		strings.Join(phones, ", "), req.BankDetails,
		req.UserID, req.AccountCount,
	)
	b.reply(b.cfg.AdminID, notice)
}

func (b *Bot) handleBalance(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	balance, err := b.svc.Balance(ctx, msg.From.ID)
	if err != nil {
		b.fail(msg, lang, err)
		return
	}
	b.reply(msg.Chat.ID, textf(lang, "balance",
		balance.UserID, balance.Verified, balance.Unverified, balance.AmountDue,
		time.Now().Format("2006-01-02")))
}

func (b *Bot) handleLanguage(ctx context.Context, msg *tgbotapi.Message, lang model.Language) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, text(lang, "language_prompt"))
	reply.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(languageButtonEnglish),
			tgbotapi.NewKeyboardButton(languageButtonHausa),
		),
	)
	b.send(reply)
}

// handleLanguageChoice consumes the reply-keyboard selection. Returns
// false when the text is not a language button.
func (b *Bot) handleLanguageChoice(ctx context.Context, msg *tgbotapi.Message) bool {
	var lang model.Language
	switch msg.Text {
	case languageButtonEnglish:
		lang = model.LanguageEnglish
	case languageButtonHausa:
		lang = model.LanguageHausa
	default:
		return false
	}

	if err := b.svc.SetLanguage(ctx, msg.From.ID, lang); err != nil {
		b.fail(msg, lang, err)
		return true
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text(lang, "language_updated"))
	reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.send(reply)
	return true
}

func (b *Bot) fail(msg *tgbotapi.Message, lang model.Language, err error) {
	logger.Logger().Error("handler failed",
		zap.Int64("user_id", msg.From.ID),
		zap.String("command", msg.Command()),
		zap.Error(err))
	b.reply(msg.Chat.ID, text(lang, "apology"))
}
